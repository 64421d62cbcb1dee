package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/patrik-drean/dealflow-cli/internal/leadfile"
	"github.com/patrik-drean/dealflow-cli/internal/model"
	"github.com/patrik-drean/dealflow-cli/internal/queue"
	"github.com/patrik-drean/dealflow-cli/internal/report"
	"github.com/patrik-drean/dealflow-cli/internal/scorer"
	"github.com/patrik-drean/dealflow-cli/internal/timefmt"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render every work queue in one report",
	Long: `Classify leads into all four work queues, prioritize each, and render
the result: either as tables on stdout or as an XLSX workbook with one sheet
per queue.

Examples:
  dealflow report --input leads.json
  dealflow report --input leads.json --output triage.xlsx`,
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.String("input", "", "lead file to load (.json, .csv, or .xlsx)")
	f.String("output", "", "XLSX workbook path (default: print tables to stdout)")
	f.String("now", "", "reference time as RFC3339 (default: wall clock)")
	_ = reportCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	log := zap.L().With(zap.String("command", "report"))

	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	now, err := referenceTime(cmd)
	if err != nil {
		return err
	}

	if err := scorer.ValidateConfig(cfg.Scorer); err != nil {
		return err
	}
	sc := scorer.New(cfg.Scorer)

	leads, err := leadfile.Load(inputPath)
	if err != nil {
		return err
	}

	queues := make([]report.Queue, 0, len(model.Queues))
	for _, q := range model.Queues {
		members := queue.Sort(queue.Classify(leads, q, sc), sc)
		queues = append(queues, report.Queue{ID: q, Leads: members})
		log.Info("queue classified",
			zap.String("queue", string(q)),
			zap.Int("members", len(members)),
		)
	}

	r := report.NewRenderer(sc, timefmt.New(cfg.Report.TZOffsetHours, cfg.Report.DateFormat), now)

	if outputPath != "" {
		if err := r.WriteWorkbook(outputPath, queues); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", outputPath)
		return nil
	}

	for i, rq := range queues {
		if i > 0 {
			fmt.Println()
		}
		if err := r.WriteTable(os.Stdout, rq); err != nil {
			return err
		}
	}
	return nil
}
