package leadfile

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/patrik-drean/dealflow-cli/internal/model"
)

// loadXLSX reads leads from the first sheet of a workbook; the first
// row is the header.
func loadXLSX(path string) ([]model.Lead, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "leadfile: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("leadfile: %s has no sheets", path)
	}

	sheet := f.Sheets[0]
	var (
		header map[string]int
		leads  []model.Lead
	)
	for i, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}

		if i == 0 {
			header = headerIndex(cells)
			continue
		}
		lead, err := leadFromRecord(header, cells, i+1)
		if err != nil {
			return nil, eris.Wrapf(err, "leadfile: %s", path)
		}
		leads = append(leads, lead)
	}
	return leads, nil
}
