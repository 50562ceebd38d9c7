package models

import (
	"time"
)

// DateLayout is the wire format for all date fields in responses (yy-MM-dd).
const DateLayout = "06-01-02"

type Company struct {
	ID               string    `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Address          string    `json:"address" db:"address"`
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`
	EmployeeCount    int       `json:"employee_count" db:"employee_count"`
	ContactNumber    string    `json:"contact_number" db:"contact_number"`
	ContactEmail     string    `json:"contact_email" db:"contact_email"`
	Website          *string   `json:"website" db:"website"`
	Active           bool      `json:"active" db:"active"`
	CreatedOn        time.Time `json:"created_on" db:"created_on"`
	UpdatedOn        time.Time `json:"updated_on" db:"updated_on"`
}

// CompanyResponse is the wire representation of a company. Date fields are
// rendered as yy-MM-dd strings.
type CompanyResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	RegistrationDate string  `json:"registration_date"`
	EmployeeCount    int     `json:"employee_count"`
	ContactNumber    string  `json:"contact_number"`
	ContactEmail     string  `json:"contact_email"`
	Website          *string `json:"website"`
	Active           bool    `json:"active"`
	CreatedOn        string  `json:"created_on"`
	UpdatedOn        string  `json:"updated_on"`
}

// Response converts the company row into its wire representation.
func (c *Company) Response() *CompanyResponse {
	return &CompanyResponse{
		ID:               c.ID,
		Name:             c.Name,
		Address:          c.Address,
		RegistrationDate: c.RegistrationDate.Format(DateLayout),
		EmployeeCount:    c.EmployeeCount,
		ContactNumber:    c.ContactNumber,
		ContactEmail:     c.ContactEmail,
		Website:          c.Website,
		Active:           c.Active,
		CreatedOn:        c.CreatedOn.Format(DateLayout),
		UpdatedOn:        c.UpdatedOn.Format(DateLayout),
	}
}

// ApplyUpdate overwrites every updatable field from src. The id, active flag
// and timestamps are managed elsewhere and never copied.
func (c *Company) ApplyUpdate(src *Company) {
	c.Name = src.Name
	c.Address = src.Address
	c.RegistrationDate = src.RegistrationDate
	c.EmployeeCount = src.EmployeeCount
	c.ContactNumber = src.ContactNumber
	c.ContactEmail = src.ContactEmail
	c.Website = src.Website
}

// CreditInfo is the derived per-company credit view: the sum of the two most
// recent fiscal years' turnover minus the total DUE loan amount.
type CreditInfo struct {
	CompanyID         string  `json:"company_id"`
	CompanyName       string  `json:"company_name"`
	CreditInformation float64 `json:"credit_information"`
}
