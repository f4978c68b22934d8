package analytics

import (
	"github.com/montanaflynn/stats"

	"github.com/weblynx/backoffice_backend/models"
)

// ExecutiveStats is the per-executive sales/conversion breakdown shown on the
// sales page performance tab
type ExecutiveStats struct {
	Name           string  `json:"name"`
	SalesCount     int     `json:"salesCount"`
	TotalAmount    float64 `json:"totalAmount"`
	LeadsCount     int     `json:"leadsCount"`
	ConvertedCount int     `json:"convertedCount"`
	ConversionRate float64 `json:"conversionRate"`
}

// ExecutivePerformance computes sales totals and lead conversion rates per
// executive (matched by exact name). Conversion rate is converted/leads as a
// percentage rounded to one decimal, 0 when the executive has no leads.
func ExecutivePerformance(executives, sales, leads []models.Record) []ExecutiveStats {
	out := make([]ExecutiveStats, 0, len(executives))
	for _, exec := range executives {
		name := Str(exec, "name")

		execSales := FilterWhere(sales, func(r models.Record) bool {
			return Str(r, "executive") == name
		})
		execLeads := FilterWhere(leads, func(r models.Record) bool {
			return Str(r, "executive") == name
		})
		converted := CountWhere(execLeads, func(r models.Record) bool {
			return Bool(r, "convertedToSale")
		})

		row := ExecutiveStats{
			Name:           name,
			SalesCount:     len(execSales),
			TotalAmount:    SumAmount(execSales, All),
			LeadsCount:     len(execLeads),
			ConvertedCount: converted,
		}
		if len(execLeads) > 0 {
			row.ConversionRate = round1(float64(converted) / float64(len(execLeads)) * 100)
		}
		out = append(out, row)
	}
	return out
}

// TelecallerStats is the per-telecaller call activity breakdown
type TelecallerStats struct {
	Name       string `json:"name"`
	TotalLeads int    `json:"totalLeads"`
	Interested int    `json:"interested"`
	TodayCalls int    `json:"todayCalls"`
	TotalCalls int    `json:"totalCalls"`
}

// TelecallerPerformance computes lead ownership and call activity per
// employee acting as a telecaller. today is the caller's current YYYY-MM-DD.
func TelecallerPerformance(employees, leads []models.Record, today string) []TelecallerStats {
	out := make([]TelecallerStats, 0, len(employees))
	for _, emp := range employees {
		name := Str(emp, "name")

		empLeads := FilterWhere(leads, func(r models.Record) bool {
			return Str(r, "telecaller") == name
		})

		out = append(out, TelecallerStats{
			Name:       name,
			TotalLeads: len(empLeads),
			Interested: CountByField(empLeads, "status", "Interested"),
			TodayCalls: CountWhere(empLeads, OnDate("lastCallDate", today)),
			TotalCalls: int(SumField(empLeads, "callCount", All)),
		})
	}
	return out
}

// VendorTotal is the per-vendor inventory value breakdown
type VendorTotal struct {
	Vendor string  `json:"vendor"`
	Items  int     `json:"items"`
	Value  float64 `json:"value"`
}

// VendorBreakdown totals inventory value (price x quantity) per vendor,
// preserving first-seen vendor order
func VendorBreakdown(items []models.Record) []VendorTotal {
	index := map[string]int{}
	var out []VendorTotal
	for _, item := range items {
		vendor := Str(item, "vendor")
		i, ok := index[vendor]
		if !ok {
			i = len(out)
			index[vendor] = i
			out = append(out, VendorTotal{Vendor: vendor})
		}
		out[i].Items++
		out[i].Value += Num(item, "price") * Num(item, "quantity")
	}
	return out
}

// EmployeeProgress is the per-employee task completion breakdown on the
// progress page
type EmployeeProgress struct {
	Name      string  `json:"name"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Percent   float64 `json:"percent"`
}

// EmployeeTaskProgress computes task completion percentages per employee
// (matched by exact assignedTo name); 0% when an employee has no tasks
func EmployeeTaskProgress(employees, tasks []models.Record) []EmployeeProgress {
	out := make([]EmployeeProgress, 0, len(employees))
	for _, emp := range employees {
		name := Str(emp, "name")

		empTasks := FilterWhere(tasks, func(r models.Record) bool {
			return Str(r, "assignedTo") == name
		})
		completed := CountByField(empTasks, "status", "Completed")

		row := EmployeeProgress{Name: name, Total: len(empTasks), Completed: completed}
		if len(empTasks) > 0 {
			row.Percent = round1(float64(completed) / float64(len(empTasks)) * 100)
		}
		out = append(out, row)
	}
	return out
}

// MeanPerformance averages a 0-100 performance field across records, 0 for an
// empty set
func MeanPerformance(records []models.Record, field string) float64 {
	if len(records) == 0 {
		return 0
	}
	values := make([]float64, 0, len(records))
	for _, r := range records {
		values = append(values, Num(r, field))
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return round1(mean)
}
