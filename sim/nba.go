// Copyright (c) 2025 The anukreon developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package sim runs possession based Monte Carlo simulations of NBA games
// and reduces the simulated outcomes to betting market statistics.
package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	// Seed is used for every simulation run so identical inputs always
	// produce identical results.
	Seed = 42

	// DefaultSims is the number of games simulated when a request does
	// not specify one.
	DefaultSims = 20000

	possStdDev  = 2.0
	pppStdDev   = 0.025
	shockStdDev = 2.5
	shockWeight = 0.35

	offWeight = 0.6
	defWeight = 0.4
)

var ErrInvalidArgument = errors.New("invalid argument")

// NBAParams are the inputs to a single simulation run. TotalLine and
// SpreadHomeLine are optional; a nil line omits the matching probabilities
// from the result.
type NBAParams struct {
	OffHome  float64
	DefHome  float64
	PaceHome float64
	OffAway  float64
	DefAway  float64
	PaceAway float64

	TotalLine      *float64
	SpreadHomeLine *float64

	N int
}

// NBAResult holds the summary statistics of a simulation run.
type NBAResult struct {
	HomeWinPct     float64 `json:"home_win_pct"`
	AwayWinPct     float64 `json:"away_win_pct"`
	AvgHome        float64 `json:"avg_home"`
	AvgAway        float64 `json:"avg_away"`
	FairSpreadHome float64 `json:"fair_spread_home"`
	FairTotal      float64 `json:"fair_total"`
	NSims          int     `json:"n_sims"`

	POverTotal  *float64 `json:"p_over_total,omitempty"`
	PUnderTotal *float64 `json:"p_under_total,omitempty"`
	PHomeCover  *float64 `json:"p_home_cover,omitempty"`
	PAwayCover  *float64 `json:"p_away_cover,omitempty"`
}

// efficiency blends a team's offense with the opponent's defense into
// expected points per 100 possessions.
func efficiency(off, oppDef float64) float64 {
	return offWeight*off + defWeight*(100-oppDef)
}

// SimulateNBA simulates p.N games between the home and away teams and
// returns the reduced statistics. It returns ErrInvalidArgument if p.N is
// not positive.
func SimulateNBA(p NBAParams) (*NBAResult, error) {
	if p.N <= 0 {
		return nil, fmt.Errorf("%w: simulation count must be positive, got %d", ErrInvalidArgument, p.N)
	}

	rng := rand.New(rand.NewPCG(Seed, 0))

	meanPace := (p.PaceHome + p.PaceAway) / 2.0
	homePPP := efficiency(p.OffHome, p.DefAway) / 100.0
	awayPPP := efficiency(p.OffAway, p.DefHome) / 100.0

	t := newTally(p.TotalLine, p.SpreadHomeLine)
	for i := 0; i < p.N; i++ {
		poss := normal(rng, meanPace, possStdDev)

		home := poss * normal(rng, homePPP, pppStdDev)
		away := poss * normal(rng, awayPPP, pppStdDev)

		// One shock per game moves both scores together.
		shock := shockWeight * normal(rng, 0, shockStdDev)
		home += shock
		away += shock

		t.add(home, away)
	}

	return t.result(), nil
}

func normal(rng *rand.Rand, mean, stdDev float64) float64 {
	return mean + stdDev*rng.NormFloat64()
}
