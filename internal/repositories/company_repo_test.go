package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"creditapi/internal/apperrors"
	"creditapi/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func stringPtr(s string) *string {
	return &s
}

var companyColumns = []string{"id", "name", "address", "registration_date", "employee_count", "contact_number", "contact_email", "website", "active", "created_on", "updated_on"}

type CompanyRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    CompanyRepository
	context context.Context
}

func (suite *CompanyRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewCompanyRepository(mock)
	suite.context = context.Background()
}

func (suite *CompanyRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestCompanyRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyRepoTestSuite))
}

func (suite *CompanyRepoTestSuite) TestGetByID_Success() {
	now := time.Date(2023, 5, 4, 0, 0, 0, 0, time.UTC)
	registered := time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(`FROM companies WHERE id = \$1 AND active = TRUE`).
		WithArgs("ab12cd34ef").
		WillReturnRows(pgxmock.NewRows(companyColumns).
			AddRow("ab12cd34ef", "Acme Ltd", "12 Main Street", registered, 120, "+15550001111", "contact@acme.test", stringPtr("https://acme.test"), true, now, now))

	company, err := suite.repo.GetByID(suite.context, "ab12cd34ef")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ab12cd34ef", company.ID)
	assert.Equal(suite.T(), "Acme Ltd", company.Name)
	assert.Equal(suite.T(), 120, company.EmployeeCount)
	assert.True(suite.T(), company.Active)
}

func (suite *CompanyRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`FROM companies WHERE id = \$1 AND active = TRUE`).
		WithArgs("missing123").
		WillReturnError(pgx.ErrNoRows)

	company, err := suite.repo.GetByID(suite.context, "missing123")
	assert.Nil(suite.T(), company)

	var appErr *apperrors.Error
	assert.True(suite.T(), errors.As(err, &appErr))
	assert.Equal(suite.T(), 404, appErr.Status)
	assert.Equal(suite.T(), "Company not found", appErr.Message)
}

func (suite *CompanyRepoTestSuite) TestGetAll_IncludesInactiveRows() {
	now := time.Date(2023, 5, 4, 0, 0, 0, 0, time.UTC)
	registered := time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC)

	// The all-companies query carries no active filter, unlike GetByID.
	suite.mock.ExpectQuery(`SELECT id, name, address, registration_date, employee_count, contact_number, contact_email, website, active, created_on, updated_on FROM companies`).
		WillReturnRows(pgxmock.NewRows(companyColumns).
			AddRow("ab12cd34ef", "Acme Ltd", "12 Main Street", registered, 120, "+15550001111", "contact@acme.test", stringPtr("https://acme.test"), true, now, now).
			AddRow("gh56ij78kl", "Retired Co", "9 Old Road", registered, 15, "+15550002222", "info@retired.test", nil, false, now, now))

	companies, err := suite.repo.GetAll(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), companies, 2)
	assert.True(suite.T(), companies[0].Active)
	assert.False(suite.T(), companies[1].Active)
}

func (suite *CompanyRepoTestSuite) TestCreate_Success() {
	now := time.Date(2023, 5, 4, 0, 0, 0, 0, time.UTC)
	company := &models.Company{
		ID:               "ab12cd34ef",
		Name:             "Acme Ltd",
		Address:          "12 Main Street",
		RegistrationDate: time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC),
		EmployeeCount:    120,
		ContactNumber:    "+15550001111",
		ContactEmail:     "contact@acme.test",
		Website:          stringPtr("https://acme.test"),
	}

	suite.mock.ExpectQuery(`INSERT INTO companies \(id, name, address, registration_date, employee_count, contact_number, contact_email, website, active, created_on, updated_on\)`).
		WithArgs(company.ID, company.Name, company.Address, company.RegistrationDate, company.EmployeeCount, company.ContactNumber, company.ContactEmail, company.Website).
		WillReturnRows(pgxmock.NewRows([]string{"active", "created_on", "updated_on"}).
			AddRow(true, now, now))

	err := suite.repo.Create(suite.context, company)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), company.Active)
	assert.Equal(suite.T(), now, company.CreatedOn)
}

func (suite *CompanyRepoTestSuite) TestCreate_DuplicateName() {
	company := &models.Company{
		ID:               "ab12cd34ef",
		Name:             "Acme Ltd",
		Address:          "12 Main Street",
		RegistrationDate: time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC),
		EmployeeCount:    120,
		ContactNumber:    "+15550001111",
		ContactEmail:     "contact@acme.test",
	}

	suite.mock.ExpectQuery(`INSERT INTO companies`).
		WithArgs(company.ID, company.Name, company.Address, company.RegistrationDate, company.EmployeeCount, company.ContactNumber, company.ContactEmail, company.Website).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "companies_name_key"})

	err := suite.repo.Create(suite.context, company)

	var appErr *apperrors.Error
	assert.True(suite.T(), errors.As(err, &appErr))
	assert.Equal(suite.T(), 400, appErr.Status)
	assert.Equal(suite.T(), "Another company with same name already exists", appErr.Message)
}

func (suite *CompanyRepoTestSuite) TestUpdate_Success() {
	updated := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	company := &models.Company{
		ID:               "ab12cd34ef",
		Name:             "Acme Industries Ltd",
		Address:          "14 Main Street",
		RegistrationDate: time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC),
		EmployeeCount:    150,
		ContactNumber:    "+15550001111",
		ContactEmail:     "contact@acme.test",
	}

	suite.mock.ExpectQuery(`UPDATE companies SET name = \$1, address = \$2, registration_date = \$3, employee_count = \$4, contact_number = \$5, contact_email = \$6, website = \$7, updated_on = NOW\(\) WHERE id = \$8`).
		WithArgs(company.Name, company.Address, company.RegistrationDate, company.EmployeeCount, company.ContactNumber, company.ContactEmail, company.Website, company.ID).
		WillReturnRows(pgxmock.NewRows([]string{"updated_on"}).AddRow(updated))

	err := suite.repo.Update(suite.context, company)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), updated, company.UpdatedOn)
}

func (suite *CompanyRepoTestSuite) TestUpdate_DatabaseError() {
	company := &models.Company{ID: "ab12cd34ef", Name: "Acme Ltd"}

	suite.mock.ExpectQuery(`UPDATE companies SET`).
		WithArgs(company.Name, company.Address, company.RegistrationDate, company.EmployeeCount, company.ContactNumber, company.ContactEmail, company.Website, company.ID).
		WillReturnError(errors.New("database connection failed"))

	err := suite.repo.Update(suite.context, company)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "database connection failed")
}
