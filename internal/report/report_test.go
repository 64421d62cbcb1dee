package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/patrik-drean/dealflow-cli/internal/model"
	"github.com/patrik-drean/dealflow-cli/internal/scorer"
	"github.com/patrik-drean/dealflow-cli/internal/timefmt"
)

func intPtr(v int) *int { return &v }

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	now, err := time.Parse(time.RFC3339, "2024-01-15T20:00:00Z")
	require.NoError(t, err)
	return NewRenderer(
		scorer.New(scorer.DefaultConfig()),
		timefmt.New(timefmt.DefaultTZOffsetHours, timefmt.DefaultDateFormat),
		now,
	)
}

func sampleQueue() Queue {
	return Queue{
		ID: model.QueueActionNow,
		Leads: []model.Lead{
			{
				ID:                "lead-1",
				Address:           "123 Main St",
				ListingPrice:      1_250_000,
				LeadScore:         intPtr(9),
				Status:            model.StatusNew,
				Priority:          model.PriorityUrgent,
				LastContactDate:   "2024-01-14T20:00:00Z",
				NeighborhoodGrade: "B",
			},
			{
				ID:       "lead-2",
				Address:  "456 Oak Ave",
				Status:   model.StatusNew,
				Priority: model.PriorityNormal,
			},
		},
	}
}

func TestWriteTable(t *testing.T) {
	t.Parallel()
	r := testRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.WriteTable(&buf, sampleQueue()))
	out := buf.String()

	assert.Contains(t, out, "Queue: action_now (2 leads)")
	assert.Contains(t, out, "lead-1")
	assert.Contains(t, out, "$1,250,000", "price gets thousands separators")
	assert.Contains(t, out, "Amazing")
	assert.Contains(t, out, "Yesterday")
	assert.Contains(t, out, "Unknown", "unscored lead shows the Unknown band")
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	r := testRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.WriteCSV(&buf, sampleQueue()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,address,listing_price,score,band,priority,status,last_contact,neighborhood_grade", lines[0])
	assert.Equal(t, "lead-1,123 Main St,1250000,9,Amazing,urgent,New,Yesterday,B", lines[1])
	assert.Equal(t, "lead-2,456 Oak Ave,0,0,Unknown,normal,New,-,", lines[2])
}

func TestWriteWorkbook(t *testing.T) {
	t.Parallel()
	r := testRenderer(t)

	path := filepath.Join(t.TempDir(), "report.xlsx")
	queues := []Queue{
		sampleQueue(),
		{ID: model.QueueFollowUp},
	}
	require.NoError(t, r.WriteWorkbook(path, queues))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 2)
	assert.Equal(t, "action_now", f.Sheets[0].Name)
	assert.Equal(t, "follow_up", f.Sheets[1].Name)

	// Header row plus two leads.
	require.Len(t, f.Sheets[0].Rows, 3)
	assert.Equal(t, "id", f.Sheets[0].Rows[0].Cells[0].String())
	assert.Equal(t, "lead-1", f.Sheets[0].Rows[1].Cells[0].String())
}
