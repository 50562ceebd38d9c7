package models

import (
	"time"
)

type LoanStatus string

const (
	LoanStatusPaid      LoanStatus = "PAID"
	LoanStatusDue       LoanStatus = "DUE"
	LoanStatusInitiated LoanStatus = "INITIATED"
)

// Valid reports whether s is one of the known loan statuses.
func (s LoanStatus) Valid() bool {
	switch s {
	case LoanStatusPaid, LoanStatusDue, LoanStatusInitiated:
		return true
	}
	return false
}

type LoanInformation struct {
	ID           int64      `json:"id" db:"id"`
	LoanAmount   float64    `json:"loan_amount" db:"loan_amount"`
	TakenOn      time.Time  `json:"taken_on" db:"taken_on"`
	BankProvider string     `json:"bank_provider" db:"bank_provider"`
	LoanStatus   LoanStatus `json:"loan_status" db:"loan_status"`
	CompanyID    string     `json:"company_id" db:"company_id"`
	Active       bool       `json:"active" db:"active"`
	CreatedOn    time.Time  `json:"created_on" db:"created_on"`
	UpdatedOn    time.Time  `json:"updated_on" db:"updated_on"`
}

// LoanResponse is the wire representation of a loan row.
type LoanResponse struct {
	ID           int64   `json:"id"`
	LoanAmount   float64 `json:"loan_amount"`
	TakenOn      string  `json:"taken_on"`
	BankProvider string  `json:"bank_provider"`
	LoanStatus   string  `json:"loan_status"`
	CompanyID    string  `json:"company_id"`
	Active       bool    `json:"active"`
	CreatedOn    string  `json:"created_on"`
	UpdatedOn    string  `json:"updated_on"`
}

// Response converts the loan row into its wire representation.
func (l *LoanInformation) Response() *LoanResponse {
	return &LoanResponse{
		ID:           l.ID,
		LoanAmount:   l.LoanAmount,
		TakenOn:      l.TakenOn.Format(DateLayout),
		BankProvider: l.BankProvider,
		LoanStatus:   string(l.LoanStatus),
		CompanyID:    l.CompanyID,
		Active:       l.Active,
		CreatedOn:    l.CreatedOn.Format(DateLayout),
		UpdatedOn:    l.UpdatedOn.Format(DateLayout),
	}
}

// ApplyUpdate overwrites every updatable field from src. The id, owning
// company, active flag and timestamps are managed elsewhere and never copied.
func (l *LoanInformation) ApplyUpdate(src *LoanInformation) {
	l.LoanAmount = src.LoanAmount
	l.TakenOn = src.TakenOn
	l.BankProvider = src.BankProvider
	l.LoanStatus = src.LoanStatus
}
