package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/patrik-drean/dealflow-cli/internal/display"
	"github.com/patrik-drean/dealflow-cli/internal/leadfile"
	"github.com/patrik-drean/dealflow-cli/internal/model"
	"github.com/patrik-drean/dealflow-cli/internal/scorer"
)

var scoreCmd = &cobra.Command{
	Use:   "score [files...]",
	Short: "Score leads from input files",
	Long: `Score leads loaded from one or more JSON, CSV, or XLSX files.

Each lead gets a 1-10 deal-quality score: the backend-provided score when
present, otherwise derived from listing price and square footage using the
configured dollars-per-square-foot ARV rule. Leads without enough data to
score report 0 (unscored).

Examples:
  # Score a single file and print a table
  dealflow score leads.json

  # Score several exports at once, write CSV
  dealflow score day1.csv day2.csv day3.xlsx --format csv --output scores.csv

  # Override the ARV rule of thumb
  dealflow score leads.json --arv-per-sqft 180`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.Float64("arv-per-sqft", 0, "dollars-per-sqft ARV estimate (overrides config)")
	f.Int("concurrency", 4, "number of input files to load in parallel")
	f.String("format", "table", "output format: table or csv")
	f.String("output", "", "output file path (default: stdout)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := zap.L().With(zap.String("command", "score"))

	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if format != "table" && format != "csv" {
		return eris.Errorf("score: --format must be table or csv (got %q)", format)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	scorerCfg := cfg.Scorer
	if v, _ := cmd.Flags().GetFloat64("arv-per-sqft"); v > 0 {
		scorerCfg.ARVPerSqft = v
	}
	if err := scorer.ValidateConfig(scorerCfg); err != nil {
		return err
	}
	sc := scorer.New(scorerCfg)

	log.Info("loading lead files",
		zap.Int("files", len(args)),
		zap.Int("concurrency", concurrency),
	)

	// Load files concurrently; per-file slices keep input order stable.
	byFile := make([][]model.Lead, len(args))
	var mu sync.Mutex
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return eris.Wrap(err, "score: cancelled")
			}
			leads, err := leadfile.Load(path)
			if err != nil {
				failed.Add(1)
				zap.L().Error("load failed", zap.String("file", path), zap.Error(err))
				return err
			}
			mu.Lock()
			byFile[i] = leads
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return eris.Wrapf(err, "score: %d file(s) failed to load", failed.Load())
	}

	var leads []model.Lead
	for _, fl := range byFile {
		leads = append(leads, fl...)
	}

	log.Info("scoring complete", zap.Int("leads", len(leads)))

	if err := outputScores(leads, sc, format, outputPath); err != nil {
		return err
	}
	printScoreSummary(leads, sc)
	return nil
}

func outputScores(leads []model.Lead, sc *scorer.Scorer, format, outputPath string) error {
	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "score: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	switch format {
	case "csv":
		return writeScoreCSV(w, leads, sc)
	case "table":
		return writeScoreTable(w, leads, sc)
	default:
		return eris.Errorf("score: unsupported format %q", format)
	}
}

func writeScoreCSV(w *os.File, leads []model.Lead, sc *scorer.Scorer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"id", "address", "listing_price", "square_footage", "score", "band"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "score: write CSV header")
	}

	for _, lead := range leads {
		score := sc.EffectiveScore(lead)
		sqft := ""
		if lead.SquareFootage != nil {
			sqft = fmt.Sprintf("%.0f", *lead.SquareFootage)
		}
		row := []string{
			lead.ID,
			lead.Address,
			fmt.Sprintf("%.0f", lead.ListingPrice),
			sqft,
			fmt.Sprintf("%d", score),
			display.ScoreBand(score).Label,
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "score: write CSV row")
		}
	}
	return nil
}

func writeScoreTable(w *os.File, leads []model.Lead, sc *scorer.Scorer) error {
	header := fmt.Sprintf("%-10s %-30s %12s %8s %6s %-8s\n",
		"ID", "Address", "Price", "SqFt", "Score", "Band")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "score: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 80)); err != nil {
		return eris.Wrap(err, "score: write table separator")
	}

	for _, lead := range leads {
		score := sc.EffectiveScore(lead)
		id := lead.ID
		if len(id) > 10 {
			id = id[:10]
		}
		address := lead.Address
		if len(address) > 30 {
			address = address[:27] + "..."
		}
		sqft := "-"
		if lead.SquareFootage != nil {
			sqft = fmt.Sprintf("%.0f", *lead.SquareFootage)
		}
		line := fmt.Sprintf("%-10s %-30s %12.0f %8s %6d %-8s\n",
			id, address, lead.ListingPrice, sqft, score, display.ScoreBand(score).Label)
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "score: write table row")
		}
	}
	return nil
}

func printScoreSummary(leads []model.Lead, sc *scorer.Scorer) {
	if len(leads) == 0 {
		fmt.Println("No leads.")
		return
	}
	var scored, unscored, sum int
	best := 0
	for _, lead := range leads {
		score := sc.EffectiveScore(lead)
		if score == 0 {
			unscored++
			continue
		}
		scored++
		sum += score
		if score > best {
			best = score
		}
	}
	fmt.Printf("\n--- Summary ---\n")
	fmt.Printf("Total leads:   %d\n", len(leads))
	fmt.Printf("Unscored:      %d\n", unscored)
	if scored > 0 {
		fmt.Printf("Best score:    %d\n", best)
		fmt.Printf("Average score: %.1f\n", float64(sum)/float64(scored))
	}
}
