package models

// EmployeeRequest is the request body for creating/updating employees
type EmployeeRequest struct {
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Department  string    `json:"department"`
	Designation string    `json:"designation"`
	Salary      float64   `json:"salary"`
	JoinDate    string    `json:"joinDate"`
	Status      string    `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Documents   []FileRef `json:"documents"`
}

// AttendanceRequest records one employee's attendance for a date
type AttendanceRequest struct {
	EmployeeName string `json:"employeeName" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=Present Absent 'Half Day' Leave"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
}

// LeaveRequest is a leave application for an employee
type LeaveRequest struct {
	EmployeeName string `json:"employeeName" validate:"required"`
	FromDate     string `json:"fromDate" validate:"required"`
	ToDate       string `json:"toDate" validate:"required"`
	Reason       string `json:"reason"`
	Status       string `json:"status" validate:"omitempty,oneof=Pending Approved Rejected"`
}
