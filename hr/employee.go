// Package hr holds the employee-management domain types exchanged with
// the REST backend.
package hr

import "strings"

// EmployeeStatus tracks an employee through the hiring workflow.
type EmployeeStatus string

const (
	StatusHired       EmployeeStatus = "HIRED"
	StatusNotAccepted EmployeeStatus = "NOT_ACCEPTED"
	StatusPending     EmployeeStatus = "PENDING"

	// StatusUnknown is the sentinel for statuses this client does not
	// recognise.
	StatusUnknown EmployeeStatus = "UNKNOWN"
)

// ParseEmployeeStatus maps a raw status string onto an EmployeeStatus.
// The mapping is total: unrecognised values become StatusUnknown.
func ParseEmployeeStatus(raw string) EmployeeStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "HIRED":
		return StatusHired
	case "NOT_ACCEPTED":
		return StatusNotAccepted
	case "PENDING":
		return StatusPending
	default:
		return StatusUnknown
	}
}

type Employee struct {
	ID           int64          `json:"id,omitempty"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Email        string         `json:"email"`
	Designation  string         `json:"designation,omitempty"`
	MobileNumber string         `json:"mobile_number,omitempty"`
	Address      string         `json:"address,omitempty"`
	HiredOn      string         `json:"hired_on,omitempty"` // ISO date, set once hired
	Status       EmployeeStatus `json:"status,omitempty"`
	CompanyID    int64          `json:"company_id,omitempty"`
	DepartmentID int64          `json:"department_id,omitempty"`
	Company      *Company       `json:"company,omitempty"`
	Department   *Department    `json:"department,omitempty"`
}

// FullName joins first and last name for display.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
