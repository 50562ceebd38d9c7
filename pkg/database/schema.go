package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		address TEXT NOT NULL,
		registration_date DATE NOT NULL,
		employee_count INTEGER NOT NULL,
		contact_number TEXT NOT NULL,
		contact_email TEXT NOT NULL,
		website TEXT,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_on TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_on TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS annual_information (
		id BIGSERIAL PRIMARY KEY,
		annual_turnover DOUBLE PRECISION NOT NULL,
		profit DOUBLE PRECISION NOT NULL,
		fiscal_year TEXT NOT NULL,
		reported_date DATE NOT NULL,
		company_id TEXT NOT NULL REFERENCES companies (id),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_on TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_on TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS loan_information (
		id BIGSERIAL PRIMARY KEY,
		loan_amount DOUBLE PRECISION NOT NULL,
		taken_on DATE NOT NULL,
		bank_provider TEXT NOT NULL,
		loan_status TEXT NOT NULL,
		company_id TEXT NOT NULL REFERENCES companies (id),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_on TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_on TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_annual_information_company_id ON annual_information (company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_loan_information_company_id ON loan_information (company_id)`,
}

// InitSchema creates the tables that don't already exist.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
