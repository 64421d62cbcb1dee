// Package leadfile loads lead records from JSON, CSV, and XLSX files.
package leadfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/patrik-drean/dealflow-cli/internal/model"
)

// Load reads leads from a file, dispatching on its extension
// (.json, .csv, or .xlsx). Records missing an id are assigned a fresh
// UUID; unknown status or priority values are rejected.
func Load(path string) ([]model.Lead, error) {
	var (
		leads []model.Lead
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		leads, err = loadJSON(path)
	case ".csv":
		leads, err = loadCSV(path)
	case ".xlsx":
		leads, err = loadXLSX(path)
	default:
		return nil, eris.Errorf("leadfile: unsupported file type %q (want .json, .csv, or .xlsx)", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := normalize(leads); err != nil {
		return nil, eris.Wrapf(err, "leadfile: %s", path)
	}
	return leads, nil
}

func loadJSON(path string) ([]model.Lead, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "leadfile: read json")
	}
	var leads []model.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, eris.Wrapf(err, "leadfile: parse json %s", path)
	}
	return leads, nil
}

// normalize fills in defaults and validates the closed-set fields.
func normalize(leads []model.Lead) error {
	for i := range leads {
		if leads[i].ID == "" {
			leads[i].ID = uuid.NewString()
		}
		if _, err := model.ParseStatus(string(leads[i].Status)); err != nil {
			return eris.Wrapf(err, "record %d", i+1)
		}
		p, err := model.ParsePriority(string(leads[i].Priority))
		if err != nil {
			return eris.Wrapf(err, "record %d", i+1)
		}
		leads[i].Priority = p
	}
	return nil
}

// leadFromRecord builds a Lead from one header-indexed row. Numeric
// parse failures are reported with the 1-based row number.
func leadFromRecord(header map[string]int, row []string, rowNum int) (model.Lead, error) {
	field := func(name string) string {
		i, ok := header[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var lead model.Lead
	lead.ID = field("id")
	lead.Address = field("address")
	lead.Status = model.Status(field("status"))
	lead.Priority = model.Priority(field("priority"))
	lead.LastContactDate = field("last_contact_date")
	lead.CreatedAt = field("created_at")
	lead.NeighborhoodGrade = field("neighborhood_grade")

	if v := field("listing_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return lead, eris.Errorf("row %d: invalid listing_price %q", rowNum, v)
		}
		lead.ListingPrice = price
	}
	if v := field("square_footage"); v != "" {
		sqft, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return lead, eris.Errorf("row %d: invalid square_footage %q", rowNum, v)
		}
		lead.SquareFootage = &sqft
	}
	if v := field("lead_score"); v != "" {
		score, err := strconv.Atoi(v)
		if err != nil {
			return lead, eris.Errorf("row %d: invalid lead_score %q", rowNum, v)
		}
		lead.LeadScore = &score
	}
	if v := field("archived"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return lead, eris.Errorf("row %d: invalid archived %q", rowNum, v)
		}
		lead.Archived = b
	}
	if v := field("follow_up_due"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return lead, eris.Errorf("row %d: invalid follow_up_due %q", rowNum, v)
		}
		lead.FollowUpDue = b
	}

	return lead, nil
}

func headerIndex(cells []string) map[string]int {
	idx := make(map[string]int, len(cells))
	for i, name := range cells {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}
