package services

import (
	"context"

	"creditapi/internal/models"
	"creditapi/internal/repositories"

	"github.com/labstack/gommon/random"
)

// Company ids are short external identifiers, not UUIDs: ten characters drawn
// from a lowercase alphanumeric alphabet, generated server-side on create and
// immutable afterwards.
const (
	companyIDAlphabet = "0123456789abcdefghijklmnopqrst"
	companyIDLength   = 10
)

type CompanyService interface {
	Get(ctx context.Context, id string) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, id string, src *models.Company) (*models.Company, error)
}

type companyService struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) Get(ctx context.Context, id string) (*models.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

func (s *companyService) List(ctx context.Context) ([]*models.Company, error) {
	return s.companyRepo.GetAll(ctx)
}

func (s *companyService) Create(ctx context.Context, company *models.Company) error {
	company.ID = random.String(companyIDLength, companyIDAlphabet)
	return s.companyRepo.Create(ctx, company)
}

// Update loads the active company, overwrites every updatable field from src
// and persists the result. Missing companies surface as the repository's
// not-found error.
func (s *companyService) Update(ctx context.Context, id string, src *models.Company) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	company.ApplyUpdate(src)
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
