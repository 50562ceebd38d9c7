package handlers

import (
	"net/http"
	"time"

	"creditapi/internal/apperrors"
	"creditapi/internal/models"
	"creditapi/internal/services"

	"github.com/labstack/echo/v4"
)

// requestDateLayout is the format accepted for date fields in request bodies.
const requestDateLayout = "2006-01-02"

// CompanyHandlers handles company-related HTTP requests
type CompanyHandlers struct {
	companyService services.CompanyService
}

// NewCompanyHandlers creates a new company handlers instance
func NewCompanyHandlers(companyService services.CompanyService) *CompanyHandlers {
	return &CompanyHandlers{companyService: companyService}
}

// CompanyRequest is the payload for company create and update.
type CompanyRequest struct {
	Name             string  `json:"name" validate:"required"`
	Address          string  `json:"address" validate:"required"`
	RegistrationDate string  `json:"registration_date" validate:"required,datetime=2006-01-02"`
	EmployeeCount    int     `json:"employee_count" validate:"required,gte=1"`
	ContactNumber    string  `json:"contact_number" validate:"required"`
	ContactEmail     string  `json:"contact_email" validate:"required,email"`
	Website          *string `json:"website" validate:"omitempty,url"`
}

func (req *CompanyRequest) toModel() (*models.Company, error) {
	registrationDate, err := time.Parse(requestDateLayout, req.RegistrationDate)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid registration_date, expected YYYY-MM-DD")
	}
	return &models.Company{
		Name:             req.Name,
		Address:          req.Address,
		RegistrationDate: registrationDate,
		EmployeeCount:    req.EmployeeCount,
		ContactNumber:    req.ContactNumber,
		ContactEmail:     req.ContactEmail,
		Website:          req.Website,
	}, nil
}

// GetCompany handles GET /company/:id
func (h *CompanyHandlers) GetCompany(c echo.Context) error {
	ctx := c.Request().Context()

	company, err := h.companyService.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":    company.Response(),
		"success": true,
	})
}

// CreateCompany handles POST /company
func (h *CompanyHandlers) CreateCompany(c echo.Context) error {
	ctx := c.Request().Context()

	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	company, err := req.toModel()
	if err != nil {
		return err
	}
	if err := h.companyService.Create(ctx, company); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"data":    company.Response(),
		"message": "Company created successfully",
		"success": true,
	})
}

// UpdateCompany handles PUT /company/:id
func (h *CompanyHandlers) UpdateCompany(c echo.Context) error {
	ctx := c.Request().Context()

	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	src, err := req.toModel()
	if err != nil {
		return err
	}
	company, err := h.companyService.Update(ctx, c.Param("id"), src)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":    company.Response(),
		"message": "Company details updated successfully",
		"success": true,
	})
}
