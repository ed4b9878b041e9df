package main

import (
	"bytes"
	"testing"

	"github.com/anukreon/sports-sim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbToMoneyline(t *testing.T) {
	tests := []struct {
		p    float64
		want int
	}{
		{0, 0},
		{1, 0},
		{0.5, -100},
		{0.75, -300},
		{0.6, -150},
		{0.4, 150},
		{0.25, 300},
		{0.125, 700},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, probToMoneyline(tt.p), "p=%v", tt.p)
	}
}

func TestFormatMoneyline(t *testing.T) {
	assert.Equal(t, "+150", formatMoneyline(150))
	assert.Equal(t, "-110", formatMoneyline(-110))
	assert.Equal(t, "-", formatMoneyline(0))
}

func TestPrintResult(t *testing.T) {
	total, spread, n := 226.5, -4.5, 500
	opts := options{
		OffHome: ptr(116.0), DefHome: ptr(111.0), PaceHome: ptr(97.5),
		OffAway: ptr(113.0), DefAway: ptr(112.0), PaceAway: ptr(99.0),
		TotalLine: &total, SpreadHomeLine: &spread, N: &n,
	}

	params, err := opts.request().Params()
	require.NoError(t, err)
	res, err := sim.SimulateNBA(params)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, params, res))

	out := buf.String()
	assert.Contains(t, out, "Home win")
	assert.Contains(t, out, "Home -4.5")
	assert.Contains(t, out, "Away +4.5")
	assert.Contains(t, out, "Over 226.5")
	assert.Contains(t, out, "Under 226.5")
	assert.Contains(t, out, "(500 sims)")
}

func TestOptionsRequestMissingRating(t *testing.T) {
	opts := options{OffHome: ptr(116.0)}
	_, err := opts.request().Params()
	assert.ErrorIs(t, err, sim.ErrMissingField)
}

func ptr(f float64) *float64 { return &f }
