package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weblynx/backoffice_backend/models"
)

func TestSumAmountCoercesMalformedValues(t *testing.T) {
	records := []models.Record{
		{"amount": 100.0},
		{"amount": "250"},
		{"amount": "abc"},
		{"amount": nil},
		{},
	}

	total := SumAmount(records, All)
	assert.Equal(t, 350.0, total, "malformed amounts must contribute 0, not NaN")
}

func TestSumFieldReadsArbitraryNumericFields(t *testing.T) {
	records := []models.Record{
		{"callCount": 3},
		{"callCount": "2"},
		{"callCount": true},
	}

	// true coerces through cast as 1
	assert.Equal(t, 6.0, SumField(records, "callCount", All))
}

func TestCountByFieldIsCaseSensitive(t *testing.T) {
	leads := []models.Record{
		{"status": "Interested"},
		{"status": "interested"},
		{"status": "Interested"},
	}

	assert.Equal(t, 2, CountByField(leads, "status", "Interested"))
	assert.Equal(t, 1, CountByField(leads, "status", "interested"))
}

func TestCategoryBreakdownExcludesZeroCategories(t *testing.T) {
	expenses := []models.Record{
		{"category": "Rent", "amount": 6000.0},
		{"category": "Snacks", "amount": 1500.0},
		{"category": "Snacks", "amount": 500.0},
		{"category": "Marketing", "amount": 2000.0},
	}
	categories := []string{"Snacks", "Rent", "Salary Advance", "Marketing", "Others"}

	rows := CategoryBreakdown(expenses, categories)
	require.Len(t, rows, 3, "zero-amount categories must be excluded")

	// Sorted descending by amount
	assert.Equal(t, "Rent", rows[0].Category)
	assert.Equal(t, 6000.0, rows[0].Amount)
	assert.Equal(t, "Snacks", rows[1].Category)
	assert.Equal(t, 2000.0, rows[1].Amount)
	assert.Equal(t, 2, rows[1].Count)
	assert.Equal(t, "Marketing", rows[2].Category)

	assert.Equal(t, 60.0, rows[0].Percent)
	assert.Equal(t, 20.0, rows[1].Percent)
	var sum float64
	for _, row := range rows {
		assert.LessOrEqual(t, row.Percent, 100.0)
		sum += row.Percent
	}
	assert.InDelta(t, 100.0, sum, 0.3)
}

func TestCategoryBreakdownEmptyInput(t *testing.T) {
	rows := CategoryBreakdown(nil, []string{"Rent", "Snacks"})
	assert.Empty(t, rows, "no records means no rows and no NaN percentages")
}

func TestDateWiseBreakdownSortsDescendingWithinMonth(t *testing.T) {
	expenses := []models.Record{
		{"date": "2025-03-02", "amount": 100.0},
		{"date": "2025-03-15", "amount": 200.0},
		{"date": "2025-03-02", "amount": 50.0},
		{"date": "2025-02-28", "amount": 999.0},
		{"date": "2024-03-10", "amount": 999.0},
	}

	rows := DateWiseBreakdown(expenses, "date", "2025-03")
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-03-15", rows[0].Date)
	assert.Equal(t, 200.0, rows[0].Amount)
	assert.Equal(t, 1, rows[0].Count)

	assert.Equal(t, "2025-03-02", rows[1].Date)
	assert.Equal(t, 150.0, rows[1].Amount)
	assert.Equal(t, 2, rows[1].Count)
}

func TestIsLowStockBoundary(t *testing.T) {
	assert.True(t, IsLowStock(models.Record{"quantity": 9}))
	assert.False(t, IsLowStock(models.Record{"quantity": 10}), "threshold is strict")
	assert.True(t, IsLowStock(models.Record{"quantity": "4"}))
	assert.True(t, IsLowStock(models.Record{}), "missing quantity coerces to 0")
}

func TestIsOverdueBoundary(t *testing.T) {
	today := "2025-03-15"

	assert.True(t, IsOverdue(models.Record{"deadline": "2025-03-14", "status": "Pending"}, today))
	assert.False(t, IsOverdue(models.Record{"deadline": "2025-03-15", "status": "Pending"}, today),
		"a deadline of today is not overdue")
	assert.False(t, IsOverdue(models.Record{"deadline": "2025-03-14", "status": "Completed"}, today))
	assert.False(t, IsOverdue(models.Record{"deadline": "2025-03-16", "status": "Pending"}, today))
}

func TestOverdueRecomputesAcrossDays(t *testing.T) {
	task := models.Record{"deadline": "2025-03-15", "status": "Pending"}

	assert.False(t, IsOverdue(task, "2025-03-15"))
	assert.True(t, IsOverdue(task, "2025-03-16"),
		"the same stored task flips overdue when the evaluation day advances")
}
