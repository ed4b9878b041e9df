package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/anukreon/sports-sim/sim"
	"github.com/jessevdk/go-flags"
)

// --------- Parameters (flags) ---------
type options struct {
	OffHome  *float64 `long:"off-home" description:"home offensive rating (pts/100)"`
	DefHome  *float64 `long:"def-home" description:"home defensive rating (lower is better)"`
	PaceHome *float64 `long:"pace-home" description:"home pace (possessions)"`
	OffAway  *float64 `long:"off-away" description:"away offensive rating"`
	DefAway  *float64 `long:"def-away" description:"away defensive rating"`
	PaceAway *float64 `long:"pace-away" description:"away pace"`

	TotalLine      *float64 `long:"total" description:"posted game total"`
	SpreadHomeLine *float64 `long:"spread" description:"posted home spread, e.g. -4.5 if home favored by 4.5"`
	N              *int     `short:"n" long:"sims" description:"number of simulated games (default 20000)"`
}

func (o *options) request() *sim.NBARequest {
	return &sim.NBARequest{
		OffHome:        o.OffHome,
		DefHome:        o.DefHome,
		PaceHome:       o.PaceHome,
		OffAway:        o.OffAway,
		DefAway:        o.DefAway,
		PaceAway:       o.PaceAway,
		TotalLine:      o.TotalLine,
		SpreadHomeLine: o.SpreadHomeLine,
		N:              o.N,
	}
}

// --------- Main entry point ---------

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	req := opts.request()
	if stdinHasData() { // --- read matchup from stdin ------------------
		req = &sim.NBARequest{}
		if err := json.NewDecoder(os.Stdin).Decode(req); err != nil {
			log.Fatalf("invalid JSON: %v", err)
		}
	}

	params, err := req.Params()
	if err != nil {
		log.Fatalf("please supply all six ratings as flags or piped JSON: %v", err)
	}

	res, err := sim.SimulateNBA(params)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}

	if err := printResult(os.Stdout, params, res); err != nil {
		log.Fatal(err)
	}
}

func printResult(out io.Writer, p sim.NBAParams, res *sim.NBAResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Market\tProb%%\tOdds\n")

	row := func(name string, prob float64) {
		fmt.Fprintf(w, "%s\t%5.2f%%\t%s\n", name, prob*100, formatMoneyline(probToMoneyline(prob)))
	}
	row("Home win", res.HomeWinPct)
	row("Away win", res.AwayWinPct)
	if res.PHomeCover != nil {
		row(fmt.Sprintf("Home %+.1f", *p.SpreadHomeLine), *res.PHomeCover)
		row(fmt.Sprintf("Away %+.1f", -*p.SpreadHomeLine), *res.PAwayCover)
	}
	if res.POverTotal != nil {
		row(fmt.Sprintf("Over %.1f", *p.TotalLine), *res.POverTotal)
		row(fmt.Sprintf("Under %.1f", *p.TotalLine), *res.PUnderTotal)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\nAvg score %.1f-%.1f  fair spread (home) %+.1f  fair total %.1f  (%d sims)\n",
		res.AvgHome, res.AvgAway, res.FairSpreadHome, res.FairTotal, res.NSims)
	return err
}

func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
