package models

// InternRequest is the request body for creating/updating interns
type InternRequest struct {
	Name        string  `json:"name" validate:"required"`
	College     string  `json:"college"`
	Course      string  `json:"course"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Performance float64 `json:"performance" validate:"min=0,max=100"`
	Status      string  `json:"status" validate:"omitempty,oneof=Active Completed"`
}

// InternTaskRequest is the request body for assigning daily intern tasks
type InternTaskRequest struct {
	InternID   string `json:"internId" validate:"required"`
	InternName string `json:"internName"`
	Date       string `json:"date" validate:"required"`
	Task       string `json:"task" validate:"required"`
	Submission string `json:"submission"`
	Status     string `json:"status"`
}

// TaskStatusRequest updates just the status of a task
type TaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
