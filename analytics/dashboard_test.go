package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weblynx/backoffice_backend/models"
)

func dashboardFixture() DashboardInput {
	return DashboardInput{
		Projects: []models.Record{
			{"type": "Web"},
			{"type": "android"},
			{"type": "Android"},
		},
		Sales: []models.Record{
			{"amount": 1000.0, "date": "2025-03-15"},
			{"amount": 2000.0, "date": "2025-03-01"},
			{"amount": 500.0, "date": "2025-02-20"},
		},
		Leads: []models.Record{
			{"status": "Interested"},
			{"status": "Follow-up"},
			{"status": "Not Interested"},
			{"status": "New"},
		},
		Expenses: []models.Record{
			{"amount": 300.0, "date": "2025-03-15"},
			{"amount": 700.0, "date": "2025-01-10"},
		},
		Inventory: []models.Record{
			{"quantity": 5},
			{"quantity": 50},
		},
		Employees: []models.Record{{"name": "Asha"}},
		Interns: []models.Record{
			{"status": "Active"},
			{"status": "Completed"},
		},
		Tasks: []models.Record{
			{"status": "Pending", "deadline": "2025-03-15"},
			{"status": "Completed", "deadline": "2025-03-10"},
		},
	}
}

func TestComputeDashboard(t *testing.T) {
	stats := ComputeDashboard(dashboardFixture(), "2025-03-15", "2025-03")

	assert.Equal(t, 3, stats.Projects.Total)
	assert.Equal(t, 2, stats.Projects.Android, "project type matching is case-insensitive")
	assert.Equal(t, 1, stats.Projects.Web)

	assert.Equal(t, 3500.0, stats.Sales.Total)
	assert.Equal(t, 1000.0, stats.Sales.Today)
	assert.Equal(t, 3000.0, stats.Sales.ThisMonth)

	assert.Equal(t, 4, stats.Telecalling.Total)
	assert.Equal(t, 1, stats.Telecalling.Interested)
	assert.Equal(t, 1, stats.Telecalling.FollowUp)
	assert.Equal(t, 1, stats.Telecalling.NotInterested)

	assert.Equal(t, 1000.0, stats.Expenses.Total)
	assert.Equal(t, 300.0, stats.Expenses.Today)
	assert.Equal(t, 300.0, stats.Expenses.ThisMonth)

	assert.Equal(t, 2, stats.Inventory.Total)
	assert.Equal(t, 1, stats.Inventory.LowStock)

	assert.Equal(t, 1, stats.Employees.Total)
	assert.Equal(t, 2, stats.Interns.Total)
	assert.Equal(t, 1, stats.Interns.Active)

	assert.Equal(t, 2, stats.Tasks.Total)
	assert.Equal(t, 1, stats.Tasks.Pending)
	assert.Equal(t, 1, stats.Tasks.Completed)
	assert.Equal(t, 1, stats.Tasks.Today)
}

func TestComputeDashboardDayWindowsShift(t *testing.T) {
	in := dashboardFixture()

	day1 := ComputeDashboard(in, "2025-03-15", "2025-03")
	day2 := ComputeDashboard(in, "2025-03-16", "2025-03")

	assert.Equal(t, 1000.0, day1.Sales.Today)
	assert.Equal(t, 0.0, day2.Sales.Today, "the same data yields different today totals on different days")
	assert.Equal(t, day1.Sales.Total, day2.Sales.Total)
}

func TestComputeReportSummaryProfit(t *testing.T) {
	sales := []models.Record{{"amount": 5000.0}, {"amount": "abc"}}
	expenses := []models.Record{{"amount": 1200.0}}
	projects := []models.Record{{"status": "Completed"}, {"status": "In Progress"}}
	interns := []models.Record{{"performance": 80.0}, {"performance": 60.0}}

	summary := ComputeReportSummary(sales, expenses, projects, nil, interns, nil)

	assert.Equal(t, 5000.0, summary.TotalSales)
	assert.Equal(t, 1200.0, summary.TotalExpenses)
	assert.Equal(t, 3800.0, summary.Profit)
	assert.Equal(t, 2, summary.TotalProjects)
	assert.Equal(t, 1, summary.CompletedProjects)
	assert.Equal(t, 70.0, summary.AvgPerformance)
}
