package services

import (
	"context"

	"creditapi/internal/models"
	"creditapi/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CreditService assembles the derived credit metric and manages loan records.
type CreditService interface {
	CompanyCreditInfo(ctx context.Context, companyID string) (*models.CreditInfo, error)
	AllCompaniesCreditInfo(ctx context.Context) ([]*models.CreditInfo, error)
	AddLoan(ctx context.Context, loan *models.LoanInformation) error
	UpdateLoan(ctx context.Context, companyID string, src *models.LoanInformation) (*models.LoanInformation, error)
	DeleteLoan(ctx context.Context, companyID string, loanID int64) error
}

type creditService struct {
	companyRepo repositories.CompanyRepository
	creditRepo  repositories.CreditRepository
}

func NewCreditService(companyRepo repositories.CompanyRepository, creditRepo repositories.CreditRepository) CreditService {
	return &creditService{
		companyRepo: companyRepo,
		creditRepo:  creditRepo,
	}
}

// creditInformation computes round(turnover - due, 2). Negative values are
// valid and represent net credit exposure.
func creditInformation(turnover, due float64) float64 {
	return decimal.NewFromFloat(turnover).
		Sub(decimal.NewFromFloat(due)).
		Round(2).
		InexactFloat64()
}

// CompanyCreditInfo computes the credit metric for one active company. The
// two aggregate reads run concurrently; if either fails the whole request
// fails, the metric is never silently defaulted.
func (s *creditService) CompanyCreditInfo(ctx context.Context, companyID string) (*models.CreditInfo, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var turnover, dueAmount float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		turnover, err = s.creditRepo.TwoYearTurnover(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		dueAmount, err = s.creditRepo.TotalDueAmount(gctx, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.CreditInfo{
		CompanyID:         company.ID,
		CompanyName:       company.Name,
		CreditInformation: creditInformation(turnover, dueAmount),
	}, nil
}

// AllCompaniesCreditInfo computes the metric for every company on file,
// inactive ones included. Companies absent from either batch map contribute
// zero for that side of the subtraction.
func (s *creditService) AllCompaniesCreditInfo(ctx context.Context) ([]*models.CreditInfo, error) {
	companies, err := s.companyRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	companyIDs := make([]string, 0, len(companies))
	for _, company := range companies {
		companyIDs = append(companyIDs, company.ID)
	}

	var turnovers, dueAmounts map[string]float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		turnovers, err = s.creditRepo.TwoYearTurnoverByCompany(gctx, companyIDs)
		return err
	})
	g.Go(func() error {
		var err error
		dueAmounts, err = s.creditRepo.TotalDueAmountByCompany(gctx, companyIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	infos := make([]*models.CreditInfo, 0, len(companies))
	for _, company := range companies {
		infos = append(infos, &models.CreditInfo{
			CompanyID:         company.ID,
			CompanyName:       company.Name,
			CreditInformation: creditInformation(turnovers[company.ID], dueAmounts[company.ID]),
		})
	}
	return infos, nil
}

// AddLoan inserts a loan after verifying the owning company exists and is
// active.
func (s *creditService) AddLoan(ctx context.Context, loan *models.LoanInformation) error {
	if _, err := s.companyRepo.GetByID(ctx, loan.CompanyID); err != nil {
		return err
	}
	return s.creditRepo.CreateLoan(ctx, loan)
}

// UpdateLoan loads the loan scoped to the company, overwrites every updatable
// field from src and persists the result.
func (s *creditService) UpdateLoan(ctx context.Context, companyID string, src *models.LoanInformation) (*models.LoanInformation, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	loan, err := s.creditRepo.GetLoan(ctx, companyID, src.ID)
	if err != nil {
		return nil, err
	}
	loan.ApplyUpdate(src)
	if err := s.creditRepo.UpdateLoan(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// DeleteLoan soft-deletes the loan scoped to the company.
func (s *creditService) DeleteLoan(ctx context.Context, companyID string, loanID int64) error {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return err
	}
	if _, err := s.creditRepo.GetLoan(ctx, companyID, loanID); err != nil {
		return err
	}
	return s.creditRepo.DeleteLoan(ctx, companyID, loanID)
}
