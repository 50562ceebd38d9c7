package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"creditapi/internal/apperrors"
	"creditapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetAll(ctx context.Context) ([]*models.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

type CompanyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCompanyRepository
	service  CompanyService
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockCompanyRepository{}
	suite.service = NewCompanyService(suite.mockRepo)

	suite.mockRepo.Test(suite.T())
}

func (suite *CompanyServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}

func (suite *CompanyServiceTestSuite) TestCreate_GeneratesShortID() {
	ctx := context.Background()
	company := &models.Company{
		Name:             "Acme Ltd",
		Address:          "12 Main Street",
		RegistrationDate: time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC),
		EmployeeCount:    120,
		ContactNumber:    "+15550001111",
		ContactEmail:     "contact@acme.test",
	}

	suite.mockRepo.On("Create", ctx, company).Return(nil)

	err := suite.service.Create(ctx, company)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), company.ID, 10)
	for _, r := range company.ID {
		assert.True(suite.T(), strings.ContainsRune("0123456789abcdefghijklmnopqrst", r))
	}
}

func (suite *CompanyServiceTestSuite) TestCreate_ConflictPropagates() {
	ctx := context.Background()
	company := &models.Company{Name: "Acme Ltd"}
	conflict := apperrors.Conflict("Another company with same name already exists")

	suite.mockRepo.On("Create", ctx, company).Return(conflict)

	err := suite.service.Create(ctx, company)
	assert.ErrorIs(suite.T(), err, conflict)
}

func (suite *CompanyServiceTestSuite) TestUpdate_OverwritesEveryUpdatableField() {
	ctx := context.Background()
	existing := &models.Company{
		ID:               "ab12cd34ef",
		Name:             "Acme Ltd",
		Address:          "12 Main Street",
		RegistrationDate: time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC),
		EmployeeCount:    120,
		ContactNumber:    "+15550001111",
		ContactEmail:     "contact@acme.test",
		Active:           true,
		CreatedOn:        time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	website := "https://acme-industries.test"
	src := &models.Company{
		Name:             "Acme Industries Ltd",
		Address:          "14 Main Street",
		RegistrationDate: time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC),
		EmployeeCount:    150,
		ContactNumber:    "+15550009999",
		ContactEmail:     "hello@acme-industries.test",
		Website:          &website,
	}

	suite.mockRepo.On("GetByID", ctx, "ab12cd34ef").Return(existing, nil)
	suite.mockRepo.On("Update", ctx, existing).Return(nil)

	updated, err := suite.service.Update(ctx, "ab12cd34ef", src)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ab12cd34ef", updated.ID)
	assert.Equal(suite.T(), "Acme Industries Ltd", updated.Name)
	assert.Equal(suite.T(), "14 Main Street", updated.Address)
	assert.Equal(suite.T(), 150, updated.EmployeeCount)
	assert.Equal(suite.T(), "+15550009999", updated.ContactNumber)
	assert.Equal(suite.T(), "hello@acme-industries.test", updated.ContactEmail)
	assert.Equal(suite.T(), &website, updated.Website)
	// Identity and lifecycle fields stay untouched.
	assert.True(suite.T(), updated.Active)
	assert.Equal(suite.T(), time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), updated.CreatedOn)
}

func (suite *CompanyServiceTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	notFound := apperrors.NotFound("Company not found")

	suite.mockRepo.On("GetByID", ctx, "missing123").Return(nil, notFound)

	updated, err := suite.service.Update(ctx, "missing123", &models.Company{Name: "X"})
	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, notFound)
}

func (suite *CompanyServiceTestSuite) TestList_PassesThrough() {
	ctx := context.Background()
	companies := []*models.Company{
		{ID: "ab12cd34ef", Name: "Acme Ltd", Active: true},
		{ID: "gh56ij78kl", Name: "Retired Co", Active: false},
	}

	suite.mockRepo.On("GetAll", ctx).Return(companies, nil)

	result, err := suite.service.List(ctx)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
}
