package main

import (
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/patrik-drean/dealflow-cli/internal/leadfile"
	"github.com/patrik-drean/dealflow-cli/internal/model"
	"github.com/patrik-drean/dealflow-cli/internal/queue"
	"github.com/patrik-drean/dealflow-cli/internal/report"
	"github.com/patrik-drean/dealflow-cli/internal/scorer"
	"github.com/patrik-drean/dealflow-cli/internal/timefmt"
)

var queueCmd = &cobra.Command{
	Use:   "queue <action_now|follow_up|negotiating|all>",
	Short: "Classify and prioritize one work queue",
	Long: `Classify leads into the named work queue and print its membership in
priority order (urgent first, then descending deal score).

Queues:
  action_now   new leads with effective score at or above the action floor
  follow_up    leads with a follow-up due
  negotiating  leads in Negotiating or Responding status
  all          every non-archived lead

Examples:
  dealflow queue action_now --input leads.json
  dealflow queue negotiating --input leads.json --format csv --output negotiating.csv
  dealflow queue all --input leads.json --format xlsx --output all.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runQueue,
}

func init() {
	f := queueCmd.Flags()
	f.String("input", "", "lead file to load (.json, .csv, or .xlsx)")
	f.String("format", "table", "output format: table, csv, or xlsx")
	f.String("output", "", "output file path (default: stdout; required for xlsx)")
	f.String("now", "", "reference time as RFC3339 (default: wall clock)")
	_ = queueCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(queueCmd)
}

func runQueue(cmd *cobra.Command, args []string) error {
	log := zap.L().With(zap.String("command", "queue"))

	q, err := model.ParseQueueID(args[0])
	if err != nil {
		return err
	}

	inputPath, _ := cmd.Flags().GetString("input")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	if format != "table" && format != "csv" && format != "xlsx" {
		return eris.Errorf("queue: --format must be table, csv, or xlsx (got %q)", format)
	}
	if format == "xlsx" && outputPath == "" {
		return eris.New("queue: --output is required with --format xlsx")
	}

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

	members := queue.Sort(queue.Classify(leads, q, sc), sc)
	log.Info("queue classified",
		zap.String("queue", string(q)),
		zap.Int("total", len(leads)),
		zap.Int("members", len(members)),
	)

	r := report.NewRenderer(sc, timefmt.New(cfg.Report.TZOffsetHours, cfg.Report.DateFormat), now)
	rq := report.Queue{ID: q, Leads: members}

	if format == "xlsx" {
		return r.WriteWorkbook(outputPath, []report.Queue{rq})
	}

	w := os.Stdout
	if outputPath != "" {
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "queue: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	}
	if format == "csv" {
		return r.WriteCSV(w, rq)
	}
	return r.WriteTable(w, rq)
}

// referenceTime resolves the --now flag, defaulting to the wall clock.
func referenceTime(cmd *cobra.Command) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("now")
	if raw == "" {
		return time.Now(), nil
	}
	now, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "invalid --now value %q", raw)
	}
	return now, nil
}
