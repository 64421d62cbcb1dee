// Package report renders classified, sorted queues as fixed-width
// tables, CSV, or XLSX workbooks.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/patrik-drean/dealflow-cli/internal/display"
	"github.com/patrik-drean/dealflow-cli/internal/model"
	"github.com/patrik-drean/dealflow-cli/internal/scorer"
	"github.com/patrik-drean/dealflow-cli/internal/timefmt"
)

// Queue is one rendered queue: its identifier and sorted membership.
type Queue struct {
	ID    model.QueueID
	Leads []model.Lead
}

// Renderer formats queues for output. Currency values get
// locale-aware thousands separators via x/text.
type Renderer struct {
	sc      *scorer.Scorer
	tf      *timefmt.Formatter
	now     time.Time
	printer *message.Printer
}

// NewRenderer creates a Renderer. The explicit now keeps the
// time-since column a pure function of its inputs.
func NewRenderer(sc *scorer.Scorer, tf *timefmt.Formatter, now time.Time) *Renderer {
	return &Renderer{
		sc:      sc,
		tf:      tf,
		now:     now,
		printer: message.NewPrinter(language.English),
	}
}

func (r *Renderer) money(amount float64) string {
	return r.printer.Sprintf("$%d", int64(amount))
}

func (r *Renderer) lastContact(lead model.Lead) string {
	if lead.LastContactDate == "" {
		return "-"
	}
	return r.tf.FormatTimeSince(lead.LastContactDate, r.now)
}

// WriteTable writes a fixed-width table for one queue.
func (r *Renderer) WriteTable(w io.Writer, q Queue) error {
	title := fmt.Sprintf("Queue: %s (%d leads)", q.ID, len(q.Leads))
	if _, err := fmt.Fprintln(w, title); err != nil {
		return eris.Wrap(err, "report: write table title")
	}

	header := fmt.Sprintf("%-10s %-30s %12s %6s %-8s %-8s %-13s %-13s %5s\n",
		"ID", "Address", "Price", "Score", "Band", "Priority", "Status", "Last Contact", "Grade")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "report: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 112)); err != nil {
		return eris.Wrap(err, "report: write table separator")
	}

	for _, lead := range q.Leads {
		score := r.sc.EffectiveScore(lead)
		band := display.ScoreBand(score)

		id := lead.ID
		if len(id) > 10 {
			id = id[:10]
		}
		address := lead.Address
		if len(address) > 30 {
			address = address[:27] + "..."
		}

		line := fmt.Sprintf("%-10s %-30s %12s %6d %-8s %-8s %-13s %-13s %5s\n",
			id, address, r.money(lead.ListingPrice), score, band.Label,
			lead.Priority, lead.Status, r.lastContact(lead), lead.NeighborhoodGrade)
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "report: write table row")
		}
	}
	return nil
}

var csvHeader = []string{
	"id", "address", "listing_price", "score", "band",
	"priority", "status", "last_contact", "neighborhood_grade",
}

// WriteCSV writes one queue as CSV.
func (r *Renderer) WriteCSV(w io.Writer, q Queue) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return eris.Wrap(err, "report: write CSV header")
	}
	for _, lead := range q.Leads {
		score := r.sc.EffectiveScore(lead)
		row := []string{
			lead.ID,
			lead.Address,
			fmt.Sprintf("%.0f", lead.ListingPrice),
			fmt.Sprintf("%d", score),
			display.ScoreBand(score).Label,
			string(lead.Priority),
			string(lead.Status),
			r.lastContact(lead),
			lead.NeighborhoodGrade,
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "report: write CSV row")
		}
	}
	return nil
}
