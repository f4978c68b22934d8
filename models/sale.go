package models

// SaleRequest is the request body for creating/updating sales
type SaleRequest struct {
	ClientName    string  `json:"clientName" validate:"required"`
	Project       string  `json:"project"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date" validate:"required"`
	PaymentStatus string  `json:"paymentStatus" validate:"required,oneof=Pending Partial Paid"`
	Executive     string  `json:"executive"`
	Description   string  `json:"description"`
}

// LeadRequest is the request body for creating/updating leads
type LeadRequest struct {
	Name            string `json:"name" validate:"required"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Company         string `json:"company"`
	Source          string `json:"source"`
	Status          string `json:"status"`
	FollowUpDate    string `json:"followUpDate"`
	Executive       string `json:"executive"`
	Telecaller      string `json:"telecaller"`
	Notes           string `json:"notes"`
	LastCallDate    string `json:"lastCallDate"`
	CallCount       int    `json:"callCount"`
	ConvertedToSale bool   `json:"convertedToSale"`
}

// LeadStatusRequest updates just the pipeline status of a lead
type LeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BulkLeadRequest carries newline-separated "name,phone,email,company" rows
type BulkLeadRequest struct {
	Data string `json:"data" validate:"required"`
}
