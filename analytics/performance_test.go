package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weblynx/backoffice_backend/models"
)

func TestExecutivePerformance(t *testing.T) {
	employees := []models.Record{
		{"name": "Asha"},
		{"name": "Ravi"},
	}
	sales := []models.Record{
		{"executive": "Asha", "amount": 10000.0},
		{"executive": "Asha", "amount": 5000.0},
		{"executive": "Ravi", "amount": 2000.0},
	}
	leads := []models.Record{
		{"executive": "Asha", "convertedToSale": true},
		{"executive": "Asha", "convertedToSale": false},
		{"executive": "Asha"},
	}

	stats := ExecutivePerformance(employees, sales, leads)
	require.Len(t, stats, 2)

	asha := stats[0]
	assert.Equal(t, "Asha", asha.Name)
	assert.Equal(t, 2, asha.SalesCount)
	assert.Equal(t, 15000.0, asha.TotalAmount)
	assert.Equal(t, 3, asha.LeadsCount)
	assert.Equal(t, 1, asha.ConvertedCount)
	assert.Equal(t, 33.3, asha.ConversionRate)

	ravi := stats[1]
	assert.Equal(t, 1, ravi.SalesCount)
	assert.Equal(t, 0, ravi.LeadsCount)
	assert.Equal(t, 0.0, ravi.ConversionRate, "no leads means 0, not NaN")
}

func TestTelecallerPerformance(t *testing.T) {
	employees := []models.Record{{"name": "Meera"}}
	leads := []models.Record{
		{"telecaller": "Meera", "status": "Interested", "lastCallDate": "2025-03-15", "callCount": 4},
		{"telecaller": "Meera", "status": "Follow-up", "lastCallDate": "2025-03-14", "callCount": "2"},
		{"telecaller": "Someone Else", "status": "Interested", "lastCallDate": "2025-03-15", "callCount": 9},
	}

	stats := TelecallerPerformance(employees, leads, "2025-03-15")
	require.Len(t, stats, 1)

	meera := stats[0]
	assert.Equal(t, 2, meera.TotalLeads)
	assert.Equal(t, 1, meera.Interested)
	assert.Equal(t, 1, meera.TodayCalls)
	assert.Equal(t, 6, meera.TotalCalls, "string call counts coerce")
}

func TestVendorBreakdown(t *testing.T) {
	items := []models.Record{
		{"vendor": "Acme", "price": 100.0, "quantity": 3},
		{"vendor": "Globex", "price": 50.0, "quantity": 2},
		{"vendor": "Acme", "price": "10", "quantity": "5"},
	}

	rows := VendorBreakdown(items)
	require.Len(t, rows, 2)

	assert.Equal(t, "Acme", rows[0].Vendor, "first-seen vendor order is preserved")
	assert.Equal(t, 2, rows[0].Items)
	assert.Equal(t, 350.0, rows[0].Value)
	assert.Equal(t, 100.0, rows[1].Value)
}

func TestEmployeeTaskProgress(t *testing.T) {
	employees := []models.Record{{"name": "Asha"}, {"name": "Idle"}}
	tasks := []models.Record{
		{"assignedTo": "Asha", "status": "Completed"},
		{"assignedTo": "Asha", "status": "Pending"},
		{"assignedTo": "Asha", "status": "Completed"},
	}

	rows := EmployeeTaskProgress(employees, tasks)
	require.Len(t, rows, 2)

	assert.Equal(t, 3, rows[0].Total)
	assert.Equal(t, 2, rows[0].Completed)
	assert.Equal(t, 66.7, rows[0].Percent)

	assert.Equal(t, 0, rows[1].Total)
	assert.Equal(t, 0.0, rows[1].Percent, "no tasks means 0%, not NaN")
}

func TestMeanPerformance(t *testing.T) {
	interns := []models.Record{
		{"performance": 80.0},
		{"performance": "90"},
		{"performance": 70.0},
	}

	assert.Equal(t, 80.0, MeanPerformance(interns, "performance"))
	assert.Equal(t, 0.0, MeanPerformance(nil, "performance"))
}
