package models

// ProjectRequest is the request body for creating/updating projects
type ProjectRequest struct {
	Title           string    `json:"title" validate:"required"`
	Client          string    `json:"client" validate:"required"`
	Type            string    `json:"type" validate:"required,oneof=Web Android"`
	Budget          float64   `json:"budget"`
	Progress        int       `json:"progress" validate:"min=0,max=100"`
	Deadline        string    `json:"deadline"`
	Status          string    `json:"status"`
	PaymentReceived float64   `json:"paymentReceived"`
	AssignedTeam    []string  `json:"assignedTeam"`
	Description     string    `json:"description"`
	Files           []FileRef `json:"files"`
}

// FileRef points at an uploaded file
type FileRef struct {
	Name string `json:"name" bson:"name"`
	URL  string `json:"url" bson:"url"`
}
