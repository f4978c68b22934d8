package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weblynx/backoffice_backend/controllers"
	"github.com/weblynx/backoffice_backend/middleware"
	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/services"
	"github.com/weblynx/backoffice_backend/websocket"
)

// SetupRoutes wires every API route group over the shared record store
func SetupRoutes(e *echo.Echo, db *mongo.Client, redisClient *redis.Client, hub *websocket.Hub, store repositories.RecordStore) {
	workflow := services.NewWorkflowService(store)

	RegisterAuthRoutes(e, controllers.NewAuthController(db))

	api := e.Group("/api", middleware.JWTMiddleware(), middleware.ActivityTracker(db))

	dashboard := controllers.NewDashboardController(store)
	api.GET("/dashboard", dashboard.GetStats)

	projects := controllers.NewProjectController(store)
	api.GET("/projects", projects.GetProjects)
	api.POST("/projects", projects.CreateProject)
	api.PUT("/projects/:id", projects.UpdateProject)
	api.DELETE("/projects/:id", projects.DeleteProject)
	api.POST("/projects/upload", projects.UploadProjectFile)

	sales := controllers.NewSaleController(store, workflow, hub)
	api.GET("/sales", sales.GetSales)
	api.POST("/sales", sales.CreateSale)
	api.PUT("/sales/:id", sales.UpdateSale)
	api.DELETE("/sales/:id", sales.DeleteSale)
	api.POST("/sales/convert/:id", sales.ConvertLead)
	api.GET("/sales/performance", sales.GetExecutivePerformance)

	leads := controllers.NewTelecallingController(store)
	api.GET("/leads", leads.GetLeads)
	api.POST("/leads", leads.CreateLead)
	api.PUT("/leads/:id", leads.UpdateLead)
	api.PATCH("/leads/:id/status", leads.UpdateLeadStatus)
	api.DELETE("/leads/:id", leads.DeleteLead)
	api.POST("/leads/bulk", leads.BulkUploadLeads)
	api.GET("/leads/performance", leads.GetTelecallerPerformance)

	expenses := controllers.NewExpenseController(store)
	api.GET("/expenses", expenses.GetExpenses)
	api.POST("/expenses", expenses.CreateExpense)
	api.PUT("/expenses/:id", expenses.UpdateExpense)
	api.DELETE("/expenses/:id", expenses.DeleteExpense)
	api.GET("/expenses/breakdown", expenses.GetBreakdown)
	api.POST("/expenses/upload", expenses.UploadBill)

	inventory := controllers.NewInventoryController(store)
	api.GET("/inventory", inventory.GetItems)
	api.POST("/inventory", inventory.CreateItem)
	api.PUT("/inventory/:id", inventory.UpdateItem)
	api.DELETE("/inventory/:id", inventory.DeleteItem)
	api.GET("/inventory/low-stock", inventory.GetLowStock)
	api.GET("/inventory/vendors", inventory.GetVendorBreakdown)

	employees := controllers.NewEmployeeController(store)
	api.GET("/employees", employees.GetEmployees)
	api.POST("/employees", employees.CreateEmployee)
	api.PUT("/employees/:id", employees.UpdateEmployee)
	api.DELETE("/employees/:id", employees.DeleteEmployee)
	api.POST("/employees/upload", employees.UploadEmployeeDocument)

	idcards := controllers.NewIDCardController(store)
	api.GET("/employees/:id/idcard", idcards.GenerateIDCard)

	attendance := controllers.NewAttendanceController(store)
	api.GET("/attendance", attendance.GetAttendance)
	api.POST("/attendance", attendance.MarkAttendance)
	api.PUT("/attendance/:id", attendance.UpdateAttendance)
	api.DELETE("/attendance/:id", attendance.DeleteAttendance)
	api.GET("/leaves", attendance.GetLeaves)
	api.POST("/leaves", attendance.ApplyLeave)
	api.PUT("/leaves/:id", attendance.UpdateLeave)
	api.DELETE("/leaves/:id", attendance.DeleteLeave)

	interns := controllers.NewInternController(store, workflow, hub)
	api.GET("/interns", interns.GetInterns)
	api.POST("/interns", interns.CreateIntern)
	api.PUT("/interns/:id", interns.UpdateIntern)
	api.DELETE("/interns/:id", interns.DeleteIntern)
	api.POST("/interns/:id/complete", interns.CompleteInternship)
	api.GET("/intern-tasks", interns.GetInternTasks)
	api.POST("/intern-tasks", interns.AssignInternTask)
	api.PUT("/intern-tasks/:id", interns.UpdateInternTask)
	api.PATCH("/intern-tasks/:id/status", interns.UpdateInternTaskStatus)
	api.DELETE("/intern-tasks/:id", interns.DeleteInternTask)

	tasks := controllers.NewTaskController(store)
	api.GET("/tasks", tasks.GetTasks)
	api.POST("/tasks", tasks.CreateTask)
	api.PUT("/tasks/:id", tasks.UpdateTask)
	api.PATCH("/tasks/:id/status", tasks.UpdateTaskStatus)
	api.DELETE("/tasks/:id", tasks.DeleteTask)
	api.GET("/tasks/progress", tasks.GetProgress)

	certificates := controllers.NewCertificateController(store)
	api.GET("/certificates", certificates.GetCertificates)
	api.POST("/certificates", certificates.CreateCertificate)
	api.DELETE("/certificates/:id", certificates.DeleteCertificate)

	documents := controllers.NewDocumentController(store)
	api.GET("/documents", documents.GetDocuments)
	api.POST("/documents", documents.CreateDocument)
	api.PUT("/documents/:id", documents.UpdateDocument)
	api.DELETE("/documents/:id", documents.DeleteDocument)
	api.POST("/documents/upload", documents.UploadDocumentFile)

	reports := controllers.NewReportController(store)
	api.GET("/reports/summary", reports.GetSummary)
	api.GET("/reports/export/:report", reports.Export)
	api.POST("/reports/email", reports.EmailReport)

	settings := controllers.NewSettingsController(store, redisClient, hub)
	api.GET("/settings", settings.GetSettings)
	api.PUT("/settings", settings.UpdateSettings, middleware.RequireRole("admin"))
	api.POST("/settings/logo", settings.UploadLogo, middleware.RequireRole("admin"))

	// Live update feed
	e.GET("/ws", func(c echo.Context) error {
		return websocket.HandleWebSocket(c, hub)
	})
}
