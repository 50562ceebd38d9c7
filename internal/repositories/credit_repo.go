package repositories

import (
	"context"
	"errors"

	"creditapi/internal/apperrors"
	"creditapi/internal/models"

	"github.com/jackc/pgx/v5"
)

// CreditRepository provides the turnover/due-amount aggregates behind the
// credit views plus loan CRUD with soft delete. GetLoan applies no active
// filter so soft-deleted loans stay retrievable by id.
type CreditRepository interface {
	TwoYearTurnover(ctx context.Context, companyID string) (float64, error)
	TotalDueAmount(ctx context.Context, companyID string) (float64, error)
	TwoYearTurnoverByCompany(ctx context.Context, companyIDs []string) (map[string]float64, error)
	TotalDueAmountByCompany(ctx context.Context, companyIDs []string) (map[string]float64, error)
	GetLoan(ctx context.Context, companyID string, loanID int64) (*models.LoanInformation, error)
	CreateLoan(ctx context.Context, loan *models.LoanInformation) error
	UpdateLoan(ctx context.Context, loan *models.LoanInformation) error
	DeleteLoan(ctx context.Context, companyID string, loanID int64) error
	InsertAnnualInformation(ctx context.Context, info *models.AnnualInformation) error
}

type creditRepo struct {
	db Database
}

func NewCreditRepository(db Database) CreditRepository {
	return &creditRepo{db: db}
}

// TwoYearTurnover sums annual_turnover over the two most recent fiscal years
// of the company. Fiscal years are fixed-width strings ("2021", "2022"), so
// lexicographic DESC ordering is chronological.
func (r *creditRepo) TwoYearTurnover(ctx context.Context, companyID string) (float64, error) {
	var total float64
	query := `
		SELECT COALESCE(SUM(recent.annual_turnover), 0)
		FROM (
			SELECT annual_turnover
			FROM annual_information
			WHERE company_id = $1
			ORDER BY fiscal_year DESC
			LIMIT 2
		) recent
	`
	if err := r.db.QueryRow(ctx, query, companyID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// TotalDueAmount sums loan_amount over the company's loans with status DUE.
func (r *creditRepo) TotalDueAmount(ctx context.Context, companyID string) (float64, error) {
	var total float64
	query := `
		SELECT COALESCE(SUM(loan_amount), 0)
		FROM loan_information
		WHERE company_id = $1 AND loan_status = 'DUE'
	`
	if err := r.db.QueryRow(ctx, query, companyID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// TwoYearTurnoverByCompany is the batched variant: per company, rank fiscal
// years descending, keep the top two and sum. Companies with no rows are
// absent from the result; callers default missing keys to zero.
func (r *creditRepo) TwoYearTurnoverByCompany(ctx context.Context, companyIDs []string) (map[string]float64, error) {
	query := `
		SELECT ranked.company_id, SUM(ranked.annual_turnover)
		FROM (
			SELECT company_id, annual_turnover,
			       ROW_NUMBER() OVER (PARTITION BY company_id ORDER BY fiscal_year DESC) AS yr_rank
			FROM annual_information
			WHERE company_id = ANY($1)
		) ranked
		WHERE ranked.yr_rank <= 2
		GROUP BY ranked.company_id
	`
	rows, err := r.db.Query(ctx, query, companyIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var companyID string
		var total float64
		if err := rows.Scan(&companyID, &total); err != nil {
			return nil, err
		}
		totals[companyID] = total
	}
	return totals, rows.Err()
}

// TotalDueAmountByCompany sums DUE loan amounts grouped by company. Same
// absence-means-zero contract as TwoYearTurnoverByCompany.
func (r *creditRepo) TotalDueAmountByCompany(ctx context.Context, companyIDs []string) (map[string]float64, error) {
	query := `
		SELECT company_id, SUM(loan_amount)
		FROM loan_information
		WHERE company_id = ANY($1) AND loan_status = 'DUE'
		GROUP BY company_id
	`
	rows, err := r.db.Query(ctx, query, companyIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var companyID string
		var total float64
		if err := rows.Scan(&companyID, &total); err != nil {
			return nil, err
		}
		totals[companyID] = total
	}
	return totals, rows.Err()
}

func (r *creditRepo) GetLoan(ctx context.Context, companyID string, loanID int64) (*models.LoanInformation, error) {
	loan := &models.LoanInformation{}
	query := `
		SELECT id, loan_amount, taken_on, bank_provider, loan_status, company_id, active, created_on, updated_on
		FROM loan_information
		WHERE company_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, companyID, loanID).Scan(&loan.ID, &loan.LoanAmount, &loan.TakenOn, &loan.BankProvider, &loan.LoanStatus, &loan.CompanyID, &loan.Active, &loan.CreatedOn, &loan.UpdatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.BadRequest("Loan does not exist in the company")
		}
		return nil, err
	}
	return loan, nil
}

func (r *creditRepo) CreateLoan(ctx context.Context, loan *models.LoanInformation) error {
	query := `
		INSERT INTO loan_information (loan_amount, taken_on, bank_provider, loan_status, company_id, active, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		RETURNING id, active, created_on, updated_on
	`
	err := r.db.QueryRow(ctx, query, loan.LoanAmount, loan.TakenOn, loan.BankProvider, loan.LoanStatus, loan.CompanyID).
		Scan(&loan.ID, &loan.Active, &loan.CreatedOn, &loan.UpdatedOn)
	if err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return apperrors.BadRequest("Referenced company does not exist")
		}
		if apperrors.IsIntegrityViolation(err) {
			return apperrors.BadRequest("Loan violates a storage constraint")
		}
		return err
	}
	return nil
}

func (r *creditRepo) UpdateLoan(ctx context.Context, loan *models.LoanInformation) error {
	query := `
		UPDATE loan_information
		SET loan_amount = $1, taken_on = $2, bank_provider = $3, loan_status = $4, updated_on = NOW()
		WHERE company_id = $5 AND id = $6
		RETURNING updated_on
	`
	err := r.db.QueryRow(ctx, query, loan.LoanAmount, loan.TakenOn, loan.BankProvider, loan.LoanStatus, loan.CompanyID, loan.ID).
		Scan(&loan.UpdatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.BadRequest("Loan does not exist in the company")
		}
		if apperrors.IsIntegrityViolation(err) {
			return apperrors.BadRequest("Loan violates a storage constraint")
		}
		return err
	}
	return nil
}

// DeleteLoan soft-deletes the loan: the row stays in place with active set
// false and a refreshed updated_on.
func (r *creditRepo) DeleteLoan(ctx context.Context, companyID string, loanID int64) error {
	query := `
		UPDATE loan_information
		SET active = FALSE, updated_on = NOW()
		WHERE company_id = $1 AND id = $2
	`
	tag, err := r.db.Exec(ctx, query, companyID, loanID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.BadRequest("Loan does not exist in the company")
	}
	return nil
}

// InsertAnnualInformation writes one fiscal year row. Only the seeder uses
// this; there is no public endpoint for annual information.
func (r *creditRepo) InsertAnnualInformation(ctx context.Context, info *models.AnnualInformation) error {
	query := `
		INSERT INTO annual_information (annual_turnover, profit, fiscal_year, reported_date, company_id, active, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, info.AnnualTurnover, info.Profit, info.FiscalYear, info.ReportedDate, info.CompanyID).Scan(&info.ID)
	if err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return apperrors.BadRequest("Referenced company does not exist")
		}
		return err
	}
	return nil
}
