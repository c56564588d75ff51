// Package cli implements the command-line interface for salesreport.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retailops/salesreport/pkg/analyze"
	"github.com/retailops/salesreport/pkg/dataset"
	"github.com/retailops/salesreport/pkg/humanfmt"
	"github.com/retailops/salesreport/pkg/logging"
	"github.com/retailops/salesreport/pkg/money"
	"github.com/retailops/salesreport/pkg/report"
)

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: salesreport <command> [options]\ncommands: analyze")
	}

	switch args[0] {
	case "analyze":
		return runAnalyze(args[1:])
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	dataPath := fs.String("data", "", "path to the JSON dataset (sellers, products, purchase_records)")
	outPath := fs.String("out", "", "output file for the report (default: stdout)")
	top := fs.Int("top", analyze.DefaultTopNumber, "top products per seller")
	pretty := fs.Bool("pretty", false, "indent JSON written to stdout")
	debug := fs.Bool("debug", false, "enable debug logging")
	humanLogs := fs.Bool("human-logs", false, "human-friendly console logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dataPath == "" {
		return errors.New("--data is required")
	}
	if *top <= 0 {
		return errors.New("--top must be positive")
	}

	logging.Init(*debug, *humanLogs)
	log := logging.L()

	start := time.Now()

	ds, err := dataset.Load(*dataPath)
	if err != nil {
		return err
	}

	opts := analyze.DefaultOptions().WithTopNumber(*top)
	sellers, err := analyze.Analyze(ds, opts)
	if err != nil {
		return err
	}

	env := report.NewEnvelope(sellers)

	if *outPath != "" {
		if err := report.Save(*outPath, env); err != nil {
			return err
		}
	} else {
		if err := writeJSON(os.Stdout, env, *pretty); err != nil {
			return err
		}
	}

	var revenue, profit float64
	var purchases int
	for _, s := range sellers {
		revenue += s.Revenue
		profit += s.Profit
		purchases += s.SalesCount
	}

	var margin float64
	if revenue != 0 {
		margin = money.Round2(profit / revenue)
	}

	log.Info().
		Str("report_id", env.ReportID).
		Int("sellers", len(sellers)).
		Str("revenue", humanfmt.Money(revenue)).
		Str("profit", humanfmt.Money(profit)).
		Str("margin", humanfmt.Percent(margin)).
		Str("purchases", humanfmt.Count(int64(purchases))).
		Str("elapsed", humanfmt.Duration(time.Since(start))).
		Msg("report complete")

	return nil
}

func writeJSON(w io.Writer, env report.Envelope, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
