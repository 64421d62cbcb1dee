package report

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/patrik-drean/dealflow-cli/internal/display"
)

// WriteWorkbook writes the given queues to an XLSX workbook at path,
// one sheet per queue.
func (r *Renderer) WriteWorkbook(path string, queues []Queue) error {
	f := xlsx.NewFile()

	for _, q := range queues {
		sheet, err := f.AddSheet(string(q.ID))
		if err != nil {
			return eris.Wrapf(err, "report: add sheet %s", q.ID)
		}

		headerRow := sheet.AddRow()
		for _, name := range csvHeader {
			headerRow.AddCell().Value = name
		}

		for _, lead := range q.Leads {
			score := r.sc.EffectiveScore(lead)
			row := sheet.AddRow()
			row.AddCell().Value = lead.ID
			row.AddCell().Value = lead.Address
			row.AddCell().SetFloat(lead.ListingPrice)
			row.AddCell().SetInt(score)
			row.AddCell().Value = display.ScoreBand(score).Label
			row.AddCell().Value = string(lead.Priority)
			row.AddCell().Value = string(lead.Status)
			row.AddCell().Value = r.lastContact(lead)
			row.AddCell().Value = lead.NeighborhoodGrade
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "report: save workbook %s", path)
	}
	return nil
}
