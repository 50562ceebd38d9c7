package repositories

import (
	"context"
	"errors"

	"creditapi/internal/apperrors"
	"creditapi/internal/models"

	"github.com/jackc/pgx/v5"
)

// CompanyRepository provides CRUD access to company rows. GetByID only sees
// active rows, while GetAll returns active and inactive rows alike: the
// all-companies credit view covers soft-deleted companies for audit purposes.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*models.Company, error)
	GetAll(ctx context.Context) ([]*models.Company, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
}

type companyRepo struct {
	db Database
}

func NewCompanyRepository(db Database) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*models.Company, error) {
	company := &models.Company{}
	query := `
		SELECT id, name, address, registration_date, employee_count, contact_number, contact_email, website, active, created_on, updated_on
		FROM companies
		WHERE id = $1 AND active = TRUE
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&company.ID, &company.Name, &company.Address, &company.RegistrationDate, &company.EmployeeCount, &company.ContactNumber, &company.ContactEmail, &company.Website, &company.Active, &company.CreatedOn, &company.UpdatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (r *companyRepo) GetAll(ctx context.Context) ([]*models.Company, error) {
	query := `
		SELECT id, name, address, registration_date, employee_count, contact_number, contact_email, website, active, created_on, updated_on
		FROM companies
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		company := &models.Company{}
		if err := rows.Scan(&company.ID, &company.Name, &company.Address, &company.RegistrationDate, &company.EmployeeCount, &company.ContactNumber, &company.ContactEmail, &company.Website, &company.Active, &company.CreatedOn, &company.UpdatedOn); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (r *companyRepo) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (id, name, address, registration_date, employee_count, contact_number, contact_email, website, active, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, NOW(), NOW())
		RETURNING active, created_on, updated_on
	`
	err := r.db.QueryRow(ctx, query, company.ID, company.Name, company.Address, company.RegistrationDate, company.EmployeeCount, company.ContactNumber, company.ContactEmail, company.Website).
		Scan(&company.Active, &company.CreatedOn, &company.UpdatedOn)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.Conflict("Another company with same name already exists")
		}
		return err
	}
	return nil
}

func (r *companyRepo) Update(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE companies
		SET name = $1, address = $2, registration_date = $3, employee_count = $4, contact_number = $5, contact_email = $6, website = $7, updated_on = NOW()
		WHERE id = $8
		RETURNING updated_on
	`
	err := r.db.QueryRow(ctx, query, company.Name, company.Address, company.RegistrationDate, company.EmployeeCount, company.ContactNumber, company.ContactEmail, company.Website, company.ID).
		Scan(&company.UpdatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Company not found")
		}
		if apperrors.IsUniqueViolation(err) {
			return apperrors.Conflict("Another company with same name already exists")
		}
		return err
	}
	return nil
}
