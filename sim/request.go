package sim

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing required field")

// NBARequest is the JSON body accepted by the simulation endpoint and the
// odds command. Ratings are pointers so an absent field can be told apart
// from a zero.
type NBARequest struct {
	OffHome  *float64 `json:"off_home"`
	DefHome  *float64 `json:"def_home"`
	PaceHome *float64 `json:"pace_home"`
	OffAway  *float64 `json:"off_away"`
	DefAway  *float64 `json:"def_away"`
	PaceAway *float64 `json:"pace_away"`

	TotalLine      *float64 `json:"total_line,omitempty"`
	SpreadHomeLine *float64 `json:"spread_home_line,omitempty"` // e.g. -4.5 if home favored by 4.5
	N              *int     `json:"n,omitempty"`
}

// Params validates the required ratings and fills in defaults. The
// simulation count is passed through unchecked.
func (r *NBARequest) Params() (NBAParams, error) {
	required := []struct {
		name string
		val  *float64
	}{
		{"off_home", r.OffHome},
		{"def_home", r.DefHome},
		{"pace_home", r.PaceHome},
		{"off_away", r.OffAway},
		{"def_away", r.DefAway},
		{"pace_away", r.PaceAway},
	}
	for _, f := range required {
		if f.val == nil {
			return NBAParams{}, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	n := DefaultSims
	if r.N != nil {
		n = *r.N
	}

	return NBAParams{
		OffHome:        *r.OffHome,
		DefHome:        *r.DefHome,
		PaceHome:       *r.PaceHome,
		OffAway:        *r.OffAway,
		DefAway:        *r.DefAway,
		PaceAway:       *r.PaceAway,
		TotalLine:      r.TotalLine,
		SpreadHomeLine: r.SpreadHomeLine,
		N:              n,
	}, nil
}
