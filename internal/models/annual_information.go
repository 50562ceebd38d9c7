package models

import (
	"time"
)

// AnnualInformation holds one fiscal year's reported figures for a company.
// Rows are created by bulk load only; the API never writes them.
type AnnualInformation struct {
	ID             int64     `json:"id" db:"id"`
	AnnualTurnover float64   `json:"annual_turnover" db:"annual_turnover"`
	Profit         float64   `json:"profit" db:"profit"`
	FiscalYear     string    `json:"fiscal_year" db:"fiscal_year"`
	ReportedDate   time.Time `json:"reported_date" db:"reported_date"`
	CompanyID      string    `json:"company_id" db:"company_id"`
	Active         bool      `json:"active" db:"active"`
	CreatedOn      time.Time `json:"created_on" db:"created_on"`
	UpdatedOn      time.Time `json:"updated_on" db:"updated_on"`
}
