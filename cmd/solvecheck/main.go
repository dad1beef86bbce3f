// Command solvecheck runs a variant's solvability heuristics on a layout and
// reports whether the deal is likely unsolvable.
//
// Usage:
//
//	solvecheck -variant klondike -seed 42
//	solvecheck -variant freecell -file deal.json -json
//
// The layout comes from -file (a JSON snapshot, see package card) or, when no
// file is given, from the seeded dealer of package deal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/solvability/card"
	"github.com/katalvlaran/solvability/deal"
	"github.com/katalvlaran/solvability/detector"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// config is the parsed command line.
type config struct {
	variant string
	file    string
	seed    int64
	asJSON  bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("solvecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.variant, "variant", detector.VariantKlondike, "variant preset: klondike or freecell")
	fs.StringVar(&c.file, "file", "", "JSON layout snapshot; empty deals a layout from -seed")
	fs.Int64Var(&c.seed, "seed", 0, "deal seed used when -file is empty")
	fs.BoolVar(&c.asJSON, "json", false, "print the evaluation as JSON")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	return c, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	logger := pterm.DefaultLogger.WithWriter(stderr)
	if cfg.verbose {
		logger = logger.WithLevel(pterm.LogLevelDebug)
	}

	d, err := detector.Preset(cfg.variant)
	if err != nil {
		logger.Error("unknown variant", logger.Args("variant", cfg.variant))
		return 1
	}
	cfg.variant = d.VariantID()

	pos, source, err := loadLayout(cfg)
	if err != nil {
		logger.Error("cannot load layout", logger.Args("source", source, "error", err))
		return 1
	}
	logger.Debug("layout loaded", logger.Args(
		"source", source,
		"cards", pos.CardCount(),
		"columns", len(pos.Group(d.TableauKey())),
	))

	ev, err := d.Evaluate(pos, detector.WithOnMatch(func(m detector.Match) {
		logger.Debug("rule matched", logger.Args("rule", m.RuleID, "evidence", len(m.Evidence)))
	}))
	if err != nil {
		logger.Error("evaluation failed", logger.Args("error", err))
		return 1
	}
	logger.Info("evaluated", logger.Args(
		"variant", ev.VariantID,
		"likely_insolvable", ev.LikelyInsolvable,
		"matched", len(ev.MatchedRules),
	))

	if cfg.asJSON {
		err = writeJSON(stdout, source, ev)
	} else {
		err = writeReport(stdout, source, pos, d.TableauKey(), ev)
	}
	if err != nil {
		logger.Error("cannot write report", logger.Args("error", err))
		return 1
	}

	return 0
}

// loadLayout returns the snapshot to evaluate and a label describing its origin.
func loadLayout(cfg config) (card.Position, string, error) {
	if cfg.file != "" {
		pos, err := readSnapshot(cfg.file)
		return pos, cfg.file, err
	}
	source := fmt.Sprintf("%s deal #%d", cfg.variant, cfg.seed)
	if cfg.variant == detector.VariantFreeCell {
		return deal.FreeCell(cfg.seed), source, nil
	}

	return deal.Klondike(cfg.seed), source, nil
}
