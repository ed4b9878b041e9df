package sim

// tally accumulates simulated games in a single pass.
type tally struct {
	totalLine      *float64
	spreadHomeLine *float64

	n         int
	homeWins  int
	awayWins  int
	sumHome   float64
	sumAway   float64
	sumDiff   float64
	sumTotal  float64
	overs     int
	unders    int
	homeCover int
	awayCover int
}

func newTally(totalLine, spreadHomeLine *float64) *tally {
	return &tally{
		totalLine:      totalLine,
		spreadHomeLine: spreadHomeLine,
	}
}

func (t *tally) add(home, away float64) {
	diff := home - away
	total := home + away

	t.n++
	t.sumHome += home
	t.sumAway += away
	t.sumDiff += diff
	t.sumTotal += total

	// Exact ties count for neither side.
	if diff > 0 {
		t.homeWins++
	} else if diff < 0 {
		t.awayWins++
	}

	if t.totalLine != nil {
		if total > *t.totalLine {
			t.overs++
		}
		if total < *t.totalLine {
			t.unders++
		}
	}

	// Both cover checks include the line itself.
	if t.spreadHomeLine != nil {
		line := *t.spreadHomeLine
		if diff >= line {
			t.homeCover++
		}
		if -diff >= -line {
			t.awayCover++
		}
	}
}

// result builds the statistics. Callers must have added at least one game.
func (t *tally) result() *NBAResult {
	n := float64(t.n)
	res := &NBAResult{
		HomeWinPct:     float64(t.homeWins) / n,
		AwayWinPct:     float64(t.awayWins) / n,
		AvgHome:        t.sumHome / n,
		AvgAway:        t.sumAway / n,
		FairSpreadHome: -(t.sumDiff / n),
		FairTotal:      t.sumTotal / n,
		NSims:          t.n,
	}

	if t.totalLine != nil {
		res.POverTotal = fraction(t.overs, t.n)
		res.PUnderTotal = fraction(t.unders, t.n)
	}
	if t.spreadHomeLine != nil {
		res.PHomeCover = fraction(t.homeCover, t.n)
		res.PAwayCover = fraction(t.awayCover, t.n)
	}
	return res
}

func fraction(count, n int) *float64 {
	f := float64(count) / float64(n)
	return &f
}
