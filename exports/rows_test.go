package exports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weblynx/backoffice_backend/models"
)

func salesFixture() []models.Record {
	return []models.Record{
		{
			"date":          "2025-03-15",
			"clientName":    "Acme Corp",
			"project":       "Website",
			"amount":        15000.0,
			"paymentStatus": "Paid",
			"executive":     "Asha",
		},
		{
			"date":          "2025-03-16",
			"clientName":    "Globex",
			"amount":        "2500",
			"paymentStatus": "Pending",
		},
	}
}

func TestCSVSales(t *testing.T) {
	data, err := CSV("sales", salesFixture())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Date,Client,Project,Amount,Payment Status,Executive", lines[0])
	assert.Contains(t, lines[1], "Acme Corp")
	assert.Contains(t, lines[1], "15000")
	assert.Contains(t, lines[2], "2500", "string amounts coerce on export")
}

func TestCSVUnknownReport(t *testing.T) {
	_, err := CSV("nope", nil)
	require.Error(t, err)
}

func TestBuildTableExpenses(t *testing.T) {
	records := []models.Record{
		{"date": "2025-03-15", "category": "Rent", "amount": 6000.0, "paidTo": "Landlord"},
	}

	table, err := BuildTable("expenses", records)
	require.NoError(t, err)

	assert.Equal(t, "Expenses Report", table.Title)
	assert.Equal(t, []string{"Date", "Category", "Amount", "Paid To"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"2025-03-15", "Rent", "6000", "Landlord"}, table.Rows[0])
}

func TestBuildTableProjectsFormatsProgress(t *testing.T) {
	records := []models.Record{
		{"title": "App", "client": "Acme", "type": "Android", "budget": 50000.5, "progress": 40, "status": "In Progress"},
	}

	table, err := BuildTable("projects", records)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "50000.50", table.Rows[0][3])
	assert.Equal(t, "40%", table.Rows[0][4])
}

func TestXLSXRoundTripsRows(t *testing.T) {
	table := Table{
		Title:   "Sales Report",
		Headers: []string{"Date", "Amount"},
		Rows:    [][]string{{"2025-03-15", "100"}},
	}

	data, err := XLSX(table)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// XLSX files are zip archives
	assert.Equal(t, "PK", string(data[:2]))
}
