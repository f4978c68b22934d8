package analytics

import (
	"strings"

	"github.com/weblynx/backoffice_backend/models"
)

// DashboardStats is the stat block the dashboard landing page renders. Every
// number is recomputed from full collection scans on each request.
type DashboardStats struct {
	Projects struct {
		Total   int `json:"total"`
		Android int `json:"android"`
		Web     int `json:"web"`
	} `json:"projects"`
	Sales struct {
		Today     float64 `json:"today"`
		ThisMonth float64 `json:"thisMonth"`
		Total     float64 `json:"total"`
	} `json:"sales"`
	Telecalling struct {
		Interested    int `json:"interested"`
		FollowUp      int `json:"followUp"`
		NotInterested int `json:"notInterested"`
		Total         int `json:"total"`
	} `json:"telecalling"`
	Expenses struct {
		Total     float64 `json:"total"`
		ThisMonth float64 `json:"thisMonth"`
		Today     float64 `json:"today"`
	} `json:"expenses"`
	Inventory struct {
		Total    int `json:"total"`
		LowStock int `json:"lowStock"`
	} `json:"inventory"`
	Employees struct {
		Total int `json:"total"`
	} `json:"employees"`
	Interns struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"interns"`
	Tasks struct {
		Total     int `json:"total"`
		Pending   int `json:"pending"`
		Completed int `json:"completed"`
		Today     int `json:"today"`
	} `json:"tasks"`
}

// DashboardInput bundles the collection scans the dashboard aggregates over
type DashboardInput struct {
	Projects  []models.Record
	Sales     []models.Record
	Leads     []models.Record
	Expenses  []models.Record
	Inventory []models.Record
	Employees []models.Record
	Interns   []models.Record
	Tasks     []models.Record
}

// ComputeDashboard derives the dashboard stat block. today and month are the
// caller's current YYYY-MM-DD and YYYY-MM, passed in per call.
func ComputeDashboard(in DashboardInput, today, month string) DashboardStats {
	var out DashboardStats

	out.Projects.Total = len(in.Projects)
	// Project type matching is the one lowercase comparison in the app
	out.Projects.Android = CountWhere(in.Projects, func(r models.Record) bool {
		return strings.ToLower(Str(r, "type")) == "android"
	})
	out.Projects.Web = CountWhere(in.Projects, func(r models.Record) bool {
		return strings.ToLower(Str(r, "type")) == "web"
	})

	out.Sales.Total = SumAmount(in.Sales, All)
	out.Sales.Today = SumAmount(in.Sales, OnDate("date", today))
	out.Sales.ThisMonth = SumAmount(in.Sales, InMonthOf("date", month))

	out.Telecalling.Total = len(in.Leads)
	out.Telecalling.Interested = CountByField(in.Leads, "status", "Interested")
	out.Telecalling.FollowUp = CountByField(in.Leads, "status", "Follow-up")
	out.Telecalling.NotInterested = CountByField(in.Leads, "status", "Not Interested")

	out.Expenses.Total = SumAmount(in.Expenses, All)
	out.Expenses.Today = SumAmount(in.Expenses, OnDate("date", today))
	out.Expenses.ThisMonth = SumAmount(in.Expenses, InMonthOf("date", month))

	out.Inventory.Total = len(in.Inventory)
	out.Inventory.LowStock = CountWhere(in.Inventory, IsLowStock)

	out.Employees.Total = len(in.Employees)

	out.Interns.Total = len(in.Interns)
	out.Interns.Active = CountByField(in.Interns, "status", "Active")

	out.Tasks.Total = len(in.Tasks)
	out.Tasks.Pending = CountByField(in.Tasks, "status", "Pending")
	out.Tasks.Completed = CountByField(in.Tasks, "status", "Completed")
	out.Tasks.Today = CountWhere(in.Tasks, OnDate("deadline", today))

	return out
}

// ReportSummary is the headline block on the reports page
type ReportSummary struct {
	TotalSales        float64 `json:"totalSales"`
	TotalExpenses     float64 `json:"totalExpenses"`
	Profit            float64 `json:"profit"`
	TotalProjects     int     `json:"totalProjects"`
	CompletedProjects int     `json:"completedProjects"`
	TotalEmployees    int     `json:"totalEmployees"`
	TotalInterns      int     `json:"totalInterns"`
	AvgPerformance    float64 `json:"avgPerformance"`
	TotalTasks        int     `json:"totalTasks"`
}

// ComputeReportSummary derives the report headline numbers; profit is simply
// total sales minus total expenses
func ComputeReportSummary(sales, expenses, projects, employees, interns, tasks []models.Record) ReportSummary {
	return ReportSummary{
		TotalSales:        SumAmount(sales, All),
		TotalExpenses:     SumAmount(expenses, All),
		Profit:            SumAmount(sales, All) - SumAmount(expenses, All),
		TotalProjects:     len(projects),
		CompletedProjects: CountByField(projects, "status", "Completed"),
		TotalEmployees:    len(employees),
		TotalInterns:      len(interns),
		AvgPerformance:    MeanPerformance(interns, "performance"),
		TotalTasks:        len(tasks),
	}
}
