package leadfile

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/patrik-drean/dealflow-cli/internal/model"
)

func loadCSV(path string) ([]model.Lead, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "leadfile: open csv")
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	headerRow, err := r.Read()
	if err != nil {
		return nil, eris.Wrapf(err, "leadfile: read csv header %s", path)
	}
	header := headerIndex(headerRow)

	var leads []model.Lead
	for rowNum := 2; ; rowNum++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "leadfile: read csv row %d", rowNum)
		}
		lead, err := leadFromRecord(header, row, rowNum)
		if err != nil {
			return nil, eris.Wrapf(err, "leadfile: %s", path)
		}
		leads = append(leads, lead)
	}
	return leads, nil
}
