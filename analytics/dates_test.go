package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodayISOFormat(t *testing.T) {
	assert.Equal(t, time.Now().Format("2006-01-02"), TodayISO())
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, "2025-03", MonthOf("2025-03-15"))
	assert.Equal(t, "2025-03", MonthOf("2025-03"))
	assert.Equal(t, "2025-03", MonthOf("March 15, 2025"), "non-ISO dates go through the tolerant parser")
	assert.Equal(t, "", MonthOf("not a date"))
	assert.Equal(t, "", MonthOf(""))
}

func TestInMonthIsYearAware(t *testing.T) {
	assert.True(t, InMonth("2025-03-15", "2025-03"))
	assert.False(t, InMonth("2024-03-15", "2025-03"), "same month of a prior year must not match")
	assert.False(t, InMonth("2025-04-01", "2025-03"))
	assert.False(t, InMonth("2025-03-15", ""))
}
