package models

// CertificateRequest is the request body for manually issued certificates.
// Certificates generated by the internship completion workflow bypass this
// and are written by the workflow service directly.
type CertificateRequest struct {
	Type          string  `json:"type" validate:"required,oneof=Internship Completion"`
	RecipientName string  `json:"recipientName" validate:"required"`
	Course        string  `json:"course"`
	College       string  `json:"college"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Performance   float64 `json:"performance"`
}

// DocumentRequest is the request body for creating/updating documents
type DocumentRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required,oneof=Company Employee Project General"`
	URL      string `json:"url"`
	Notes    string `json:"notes"`
}
