package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/xtding233/bowling-backend/internal/replay"
	"github.com/xtding233/bowling-backend/internal/sim"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("scorecard", "Score ten-pin bowling games.")

	replayCmd   = app.Command("replay", "Replay YAML score sheets and check expected totals.")
	replayFiles = replayCmd.Arg("sheet", "Score sheet files, merged in order").Required().ExistingFiles()
	replayDir   = replayCmd.Flag("dir", "Also load every *.yaml/*.yml sheet in this directory first").Short('d').ExistingDir()

	simCmd    = app.Command("simulate", "Bowl random games and summarize the scores.")
	simTrials = simCmd.Flag("trials", "Number of games").Default("10000").Short('n').Int()
	simSeed   = simCmd.Flag("seed", "Seed for a reproducible run; 0 uses a crypto source").Default("0").Short('s').Uint64()
)

func main() {
	app.Version("0.1.0")
	app.HelpFlag.Short('h')

	var err error
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case replayCmd.FullCommand():
		err = runReplay(os.Stdout)
	case simCmd.FullCommand():
		err = runSimulate(os.Stdout)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func runReplay(w io.Writer) error {
	var paths []string
	if *replayDir != "" {
		found, err := replay.SheetPaths(*replayDir)
		if err != nil {
			return fmt.Errorf("list %s: %w", *replayDir, err)
		}
		if len(found) == 0 {
			log.Println("no sheets found in", *replayDir)
		}
		paths = append(paths, found...)
	}
	paths = append(paths, *replayFiles...)

	sheet, err := replay.LoadSheets(paths...)
	if err != nil {
		return err
	}
	if err := replay.ValidateSheet(sheet); err != nil {
		return err
	}

	failed := 0
	for _, r := range replay.Replay(sheet) {
		fmt.Fprintln(w, formatResult(r))
		if !r.Matched() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d games failed", failed, len(sheet.Games))
	}
	return nil
}

func formatResult(r replay.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %-21s", r.Name, strings.Join(r.Marks, ""))
	switch {
	case r.Err != nil:
		fmt.Fprintf(&b, " error: %v", r.Err)
	case !r.Complete:
		b.WriteString(" incomplete")
	default:
		fmt.Fprintf(&b, " %3d", r.Score)
		if r.Expect != nil {
			status := "ok"
			if *r.Expect != r.Score {
				status = "MISMATCH"
			}
			fmt.Fprintf(&b, " [expected %d: %s]", *r.Expect, status)
		}
	}
	return b.String()
}

func runSimulate(w io.Writer) error {
	rng := sim.DefaultRNG()
	if *simSeed != 0 {
		rng = sim.NewSeededRNG(*simSeed)
	}
	st, err := sim.RunMonteCarlo(*simTrials, rng)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "games  %d\n", st.Games)
	fmt.Fprintf(w, "mean   %.2f\n", st.Mean)
	fmt.Fprintf(w, "stddev %.2f\n", st.StdDev)
	fmt.Fprintf(w, "p50    %.1f\n", st.P50)
	fmt.Fprintf(w, "p90    %.1f\n", st.P90)
	fmt.Fprintf(w, "p99    %.1f\n", st.P99)
	fmt.Fprintf(w, "min    %d\n", st.Min)
	fmt.Fprintf(w, "max    %d\n", st.Max)
	return nil
}
