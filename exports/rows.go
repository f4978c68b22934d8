// Package exports formats already-aggregated tables into CSV, XLSX and PDF
// byte streams. Nothing here recomputes values: rows arrive final.
package exports

import (
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/models"
)

// Table is an ordered header row plus stringified body rows
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// SalesRow is one exported sales record
type SalesRow struct {
	Date      string  `csv:"Date"`
	Client    string  `csv:"Client"`
	Project   string  `csv:"Project"`
	Amount    float64 `csv:"Amount"`
	Status    string  `csv:"Payment Status"`
	Executive string  `csv:"Executive"`
}

// ExpenseRow is one exported expense record
type ExpenseRow struct {
	Date     string  `csv:"Date"`
	Category string  `csv:"Category"`
	Amount   float64 `csv:"Amount"`
	PaidTo   string  `csv:"Paid To"`
}

// ProjectRow is one exported project record
type ProjectRow struct {
	Title    string  `csv:"Title"`
	Client   string  `csv:"Client"`
	Type     string  `csv:"Type"`
	Budget   float64 `csv:"Budget"`
	Progress float64 `csv:"Progress"`
	Status   string  `csv:"Status"`
}

// AttendanceRow is one exported attendance record
type AttendanceRow struct {
	Date     string `csv:"Date"`
	Employee string `csv:"Employee"`
	Status   string `csv:"Status"`
	CheckIn  string `csv:"Check In"`
	CheckOut string `csv:"Check Out"`
}

// InternRow is one exported intern record
type InternRow struct {
	Name        string  `csv:"Name"`
	College     string  `csv:"College"`
	Course      string  `csv:"Course"`
	StartDate   string  `csv:"Start Date"`
	EndDate     string  `csv:"End Date"`
	Performance float64 `csv:"Performance"`
	Status      string  `csv:"Status"`
}

// CSV renders the named report's records as CSV bytes (header row + one
// comma-joined line per record)
func CSV(report string, records []models.Record) ([]byte, error) {
	switch report {
	case "sales":
		rows := make([]SalesRow, 0, len(records))
		for _, r := range records {
			rows = append(rows, SalesRow{
				Date:      analytics.Str(r, "date"),
				Client:    analytics.Str(r, "clientName"),
				Project:   analytics.Str(r, "project"),
				Amount:    analytics.Amount(r),
				Status:    analytics.Str(r, "paymentStatus"),
				Executive: analytics.Str(r, "executive"),
			})
		}
		return gocsv.MarshalBytes(&rows)
	case "expenses":
		rows := make([]ExpenseRow, 0, len(records))
		for _, r := range records {
			rows = append(rows, ExpenseRow{
				Date:     analytics.Str(r, "date"),
				Category: analytics.Str(r, "category"),
				Amount:   analytics.Amount(r),
				PaidTo:   analytics.Str(r, "paidTo"),
			})
		}
		return gocsv.MarshalBytes(&rows)
	case "projects":
		rows := make([]ProjectRow, 0, len(records))
		for _, r := range records {
			rows = append(rows, ProjectRow{
				Title:    analytics.Str(r, "title"),
				Client:   analytics.Str(r, "client"),
				Type:     analytics.Str(r, "type"),
				Budget:   analytics.Num(r, "budget"),
				Progress: analytics.Num(r, "progress"),
				Status:   analytics.Str(r, "status"),
			})
		}
		return gocsv.MarshalBytes(&rows)
	case "attendance":
		rows := make([]AttendanceRow, 0, len(records))
		for _, r := range records {
			rows = append(rows, AttendanceRow{
				Date:     analytics.Str(r, "date"),
				Employee: analytics.Str(r, "employeeName"),
				Status:   analytics.Str(r, "status"),
				CheckIn:  analytics.Str(r, "checkIn"),
				CheckOut: analytics.Str(r, "checkOut"),
			})
		}
		return gocsv.MarshalBytes(&rows)
	case "interns":
		rows := make([]InternRow, 0, len(records))
		for _, r := range records {
			rows = append(rows, InternRow{
				Name:        analytics.Str(r, "name"),
				College:     analytics.Str(r, "college"),
				Course:      analytics.Str(r, "course"),
				StartDate:   analytics.Str(r, "startDate"),
				EndDate:     analytics.Str(r, "endDate"),
				Performance: analytics.Num(r, "performance"),
				Status:      analytics.Str(r, "status"),
			})
		}
		return gocsv.MarshalBytes(&rows)
	}
	return nil, fmt.Errorf("unknown report %q", report)
}

// BuildTable renders the named report's records as a stringified table for
// the PDF/XLSX writers
func BuildTable(report string, records []models.Record) (Table, error) {
	switch report {
	case "sales":
		t := Table{Title: "Sales Report", Headers: []string{"Date", "Client", "Project", "Amount", "Payment Status", "Executive"}}
		for _, r := range records {
			t.Rows = append(t.Rows, []string{
				analytics.Str(r, "date"),
				analytics.Str(r, "clientName"),
				analytics.Str(r, "project"),
				formatAmount(analytics.Amount(r)),
				analytics.Str(r, "paymentStatus"),
				analytics.Str(r, "executive"),
			})
		}
		return t, nil
	case "expenses":
		t := Table{Title: "Expenses Report", Headers: []string{"Date", "Category", "Amount", "Paid To"}}
		for _, r := range records {
			t.Rows = append(t.Rows, []string{
				analytics.Str(r, "date"),
				analytics.Str(r, "category"),
				formatAmount(analytics.Amount(r)),
				analytics.Str(r, "paidTo"),
			})
		}
		return t, nil
	case "projects":
		t := Table{Title: "Projects Report", Headers: []string{"Title", "Client", "Type", "Budget", "Progress", "Status"}}
		for _, r := range records {
			t.Rows = append(t.Rows, []string{
				analytics.Str(r, "title"),
				analytics.Str(r, "client"),
				analytics.Str(r, "type"),
				formatAmount(analytics.Num(r, "budget")),
				fmt.Sprintf("%.0f%%", analytics.Num(r, "progress")),
				analytics.Str(r, "status"),
			})
		}
		return t, nil
	case "attendance":
		t := Table{Title: "Attendance Report", Headers: []string{"Date", "Employee", "Status", "Check In", "Check Out"}}
		for _, r := range records {
			t.Rows = append(t.Rows, []string{
				analytics.Str(r, "date"),
				analytics.Str(r, "employeeName"),
				analytics.Str(r, "status"),
				analytics.Str(r, "checkIn"),
				analytics.Str(r, "checkOut"),
			})
		}
		return t, nil
	case "interns":
		t := Table{Title: "Internship Report", Headers: []string{"Name", "College", "Course", "Start Date", "End Date", "Performance", "Status"}}
		for _, r := range records {
			t.Rows = append(t.Rows, []string{
				analytics.Str(r, "name"),
				analytics.Str(r, "college"),
				analytics.Str(r, "course"),
				analytics.Str(r, "startDate"),
				analytics.Str(r, "endDate"),
				fmt.Sprintf("%.0f", analytics.Num(r, "performance")),
				analytics.Str(r, "status"),
			})
		}
		return t, nil
	}
	return Table{}, fmt.Errorf("unknown report %q", report)
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
