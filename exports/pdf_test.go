package exports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPDF(t *testing.T) {
	lh := Letterhead{
		CompanyName: "WebLynx Solutions",
		Address:     "12 MG Road, Kochi",
		Phone:       "+91 98765 43210",
		Email:       "hello@weblynx.example",
	}
	table := Table{
		Title:   "Sales Report",
		Headers: []string{"Date", "Client", "Amount"},
		Rows: [][]string{
			{"2025-03-15", "Acme Corp", "15000"},
			{"2025-03-16", "Globex", "2500"},
		},
	}

	data, err := ReportPDF(lh, table)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestReportPDFEmptyTable(t *testing.T) {
	data, err := ReportPDF(Letterhead{CompanyName: "WebLynx"}, Table{
		Title:   "Sales Report",
		Headers: []string{"Date", "Client", "Amount"},
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestIDCardPDF(t *testing.T) {
	card := IDCardData{
		EmployeeID:  "rec-42",
		Name:        "Asha Nair",
		Designation: "Sales Executive",
		Department:  "Sales",
		JoinDate:    "2024-06-01",
	}

	data, err := IDCardPDF(Letterhead{CompanyName: "WebLynx Solutions"}, card)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
