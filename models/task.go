package models

// TaskRequest is the request body for creating/updating tasks
type TaskRequest struct {
	Title       string `json:"title" validate:"required"`
	AssignedTo  string `json:"assignedTo"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status" validate:"omitempty,oneof=Pending 'In Progress' Completed 'On Hold'"`
	Priority    string `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Description string `json:"description"`
}
