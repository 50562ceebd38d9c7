// Package seed populates the database with development data: ten companies,
// three fiscal years of annual information each and a handful of loans.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"creditapi/internal/models"
	"creditapi/internal/repositories"
	"creditapi/internal/services"

	"github.com/labstack/gommon/random"
	"github.com/rs/zerolog"
)

const (
	companyCount    = 10
	firstFiscalYear = 2020
	lastFiscalYear  = 2022
)

var loanStatuses = []models.LoanStatus{
	models.LoanStatusPaid,
	models.LoanStatusDue,
	models.LoanStatusInitiated,
}

var bankNames = []string{
	"Meridian Trust", "First Harbor Bank", "Cobalt Capital",
	"Northgate Savings", "Pioneer Union Bank",
}

type Seeder struct {
	companyService services.CompanyService
	creditRepo     repositories.CreditRepository
	logger         zerolog.Logger
}

func New(companyService services.CompanyService, creditRepo repositories.CreditRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		companyService: companyService,
		creditRepo:     creditRepo,
		logger:         logger,
	}
}

// Run seeds once. It is a no-op when companies already exist, so restarting
// with seeding enabled does not duplicate data.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.companyService.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.logger.Info().Int("companies", len(existing)).Msg("seed skipped, data already present")
		return nil
	}

	for i := 0; i < companyCount; i++ {
		website := fmt.Sprintf("https://www.%s.example.com", random.String(8, random.Lowercase))
		company := &models.Company{
			Name:             fmt.Sprintf("%s %s Ltd", random.String(6, random.Uppercase), random.String(4, random.Lowercase)),
			Address:          fmt.Sprintf("%d %s Street", rand.Intn(900)+100, random.String(7, random.Lowercase)),
			RegistrationDate: randomDate(2019, 2020),
			EmployeeCount:    rand.Intn(491) + 10,
			ContactNumber:    fmt.Sprintf("+1%s", random.String(10, random.Numeric)),
			ContactEmail:     fmt.Sprintf("contact@%s.example.com", random.String(8, random.Lowercase)),
			Website:          &website,
		}
		if err := s.companyService.Create(ctx, company); err != nil {
			return err
		}

		for year := firstFiscalYear; year <= lastFiscalYear; year++ {
			info := &models.AnnualInformation{
				AnnualTurnover: randomAmount(1_000_000, 10_000_000),
				Profit:         randomAmount(100_000, 1_000_000),
				FiscalYear:     fmt.Sprintf("%d", year),
				ReportedDate:   time.Date(year+1, time.March, 20, 0, 0, 0, 0, time.UTC),
				CompanyID:      company.ID,
			}
			if err := s.creditRepo.InsertAnnualInformation(ctx, info); err != nil {
				return err
			}
		}

		for j := 0; j < rand.Intn(5)+1; j++ {
			loan := &models.LoanInformation{
				LoanAmount:   randomAmount(500_000, 5_000_000),
				TakenOn:      randomDate(2020, 2022),
				BankProvider: bankNames[rand.Intn(len(bankNames))],
				LoanStatus:   loanStatuses[rand.Intn(len(loanStatuses))],
				CompanyID:    company.ID,
			}
			if err := s.creditRepo.CreateLoan(ctx, loan); err != nil {
				return err
			}
		}
	}

	s.logger.Info().Int("companies", companyCount).Msg("seed data created")
	return nil
}

func randomDate(firstYear, lastYear int) time.Time {
	year := firstYear + rand.Intn(lastYear-firstYear+1)
	return time.Date(year, time.Month(rand.Intn(12)+1), rand.Intn(28)+1, 0, 0, 0, 0, time.UTC)
}

func randomAmount(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
