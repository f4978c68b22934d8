package analytics

import (
	"math"
	"sort"

	"github.com/weblynx/backoffice_backend/models"
)

// Predicate selects records for an aggregation
type Predicate func(models.Record) bool

// All matches every record
func All(models.Record) bool { return true }

// SumAmount totals the amount field of every record matching pred. Records
// with a missing or non-numeric amount contribute 0.
func SumAmount(records []models.Record, pred Predicate) float64 {
	var total float64
	for _, r := range records {
		if pred(r) {
			total += Amount(r)
		}
	}
	return total
}

// SumField totals an arbitrary numeric field across matching records
func SumField(records []models.Record, field string, pred Predicate) float64 {
	var total float64
	for _, r := range records {
		if pred(r) {
			total += Num(r, field)
		}
	}
	return total
}

// CountWhere counts records matching pred
func CountWhere(records []models.Record, pred Predicate) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// CountByField counts records whose field exactly equals value. The match is
// case-sensitive: a lowercase "active" does not match "Active".
func CountByField(records []models.Record, field, value string) int {
	return CountWhere(records, func(r models.Record) bool {
		return Str(r, field) == value
	})
}

// OnDate selects records whose date field equals the given YYYY-MM-DD day
func OnDate(field, day string) Predicate {
	return func(r models.Record) bool {
		return Str(r, field) == day
	}
}

// InMonthOf selects records whose date field falls in the given YYYY-MM month
func InMonthOf(field, month string) Predicate {
	return func(r models.Record) bool {
		return InMonth(Str(r, field), month)
	}
}

// FilterWhere returns the records matching pred, preserving order
func FilterWhere(records []models.Record, pred Predicate) []models.Record {
	var out []models.Record
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// CategoryTotal is one row of a category breakdown
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// CategoryBreakdown groups records by their category field against a fixed
// category enumeration. Categories with a zero total are excluded, rows are
// sorted descending by amount, and Percent is each row's share of the grand
// total across all records (0 when the grand total is 0, never NaN).
func CategoryBreakdown(records []models.Record, categories []string) []CategoryTotal {
	grandTotal := SumAmount(records, All)

	var out []CategoryTotal
	for _, cat := range categories {
		matching := FilterWhere(records, func(r models.Record) bool {
			return Str(r, "category") == cat
		})
		amount := SumAmount(matching, All)
		if amount <= 0 {
			continue
		}
		row := CategoryTotal{Category: cat, Amount: amount, Count: len(matching)}
		if grandTotal > 0 {
			row.Percent = round1(amount / grandTotal * 100)
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out
}

// DateTotal is one row of a date-wise breakdown
type DateTotal struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// DateWiseBreakdown groups records by their exact date string within the
// selected YYYY-MM month, sorted descending by date.
func DateWiseBreakdown(records []models.Record, field, month string) []DateTotal {
	byDate := map[string]*DateTotal{}
	for _, r := range records {
		date := Str(r, field)
		if !InMonth(date, month) {
			continue
		}
		row, ok := byDate[date]
		if !ok {
			row = &DateTotal{Date: date}
			byDate[date] = row
		}
		row.Amount += Amount(r)
		row.Count++
	}

	out := make([]DateTotal, 0, len(byDate))
	for _, row := range byDate {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// lowStockThreshold is the fixed reorder threshold, not configurable
const lowStockThreshold = 10

// IsLowStock flags inventory items with quantity strictly below 10
func IsLowStock(r models.Record) bool {
	return Num(r, "quantity") < lowStockThreshold
}

// IsOverdue flags tasks whose deadline string sorts strictly before today
// and whose status is not Completed. ISO dates compare lexicographically.
func IsOverdue(r models.Record, today string) bool {
	return Str(r, "deadline") < today && Str(r, "status") != "Completed"
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
