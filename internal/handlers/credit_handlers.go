package handlers

import (
	"net/http"
	"strconv"
	"time"

	"creditapi/internal/apperrors"
	"creditapi/internal/models"
	"creditapi/internal/services"

	"github.com/labstack/echo/v4"
)

// CreditHandlers handles credit-information and loan HTTP requests
type CreditHandlers struct {
	creditService services.CreditService
}

// NewCreditHandlers creates a new credit handlers instance
func NewCreditHandlers(creditService services.CreditService) *CreditHandlers {
	return &CreditHandlers{creditService: creditService}
}

// LoanCreateRequest is the payload for POST /credits.
type LoanCreateRequest struct {
	LoanAmount   float64 `json:"loan_amount" validate:"required,gt=0"`
	TakenOn      string  `json:"taken_on" validate:"required,datetime=2006-01-02"`
	BankProvider string  `json:"bank_provider" validate:"required"`
	LoanStatus   string  `json:"loan_status" validate:"required,oneof=PAID DUE INITIATED"`
	CompanyID    string  `json:"company_id" validate:"required"`
}

// LoanUpdateRequest is the payload for PUT /credits/:company_id. The loan id
// travels in the body, the owning company in the path.
type LoanUpdateRequest struct {
	ID           int64   `json:"id" validate:"required"`
	LoanAmount   float64 `json:"loan_amount" validate:"required,gt=0"`
	TakenOn      string  `json:"taken_on" validate:"required,datetime=2006-01-02"`
	BankProvider string  `json:"bank_provider" validate:"required"`
	LoanStatus   string  `json:"loan_status" validate:"required,oneof=PAID DUE INITIATED"`
}

func parseTakenOn(value string) (time.Time, error) {
	takenOn, err := time.Parse(requestDateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.BadRequest("Invalid taken_on, expected YYYY-MM-DD")
	}
	return takenOn, nil
}

// GetAllCreditInfo handles GET /credits
func (h *CreditHandlers) GetAllCreditInfo(c echo.Context) error {
	ctx := c.Request().Context()

	infos, err := h.creditService.AllCompaniesCreditInfo(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":    infos,
		"success": true,
	})
}

// GetCreditInfo handles GET /credits/:company_id
func (h *CreditHandlers) GetCreditInfo(c echo.Context) error {
	ctx := c.Request().Context()

	info, err := h.creditService.CompanyCreditInfo(ctx, c.Param("company_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":    info,
		"success": true,
	})
}

// AddLoan handles POST /credits
func (h *CreditHandlers) AddLoan(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoanCreateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	takenOn, err := parseTakenOn(req.TakenOn)
	if err != nil {
		return err
	}
	loan := &models.LoanInformation{
		LoanAmount:   req.LoanAmount,
		TakenOn:      takenOn,
		BankProvider: req.BankProvider,
		LoanStatus:   models.LoanStatus(req.LoanStatus),
		CompanyID:    req.CompanyID,
	}
	if err := h.creditService.AddLoan(ctx, loan); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"data":    loan.Response(),
		"message": "Loan uploaded successfully",
		"success": true,
	})
}

// UpdateLoan handles PUT /credits/:company_id
func (h *CreditHandlers) UpdateLoan(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoanUpdateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	takenOn, err := parseTakenOn(req.TakenOn)
	if err != nil {
		return err
	}
	src := &models.LoanInformation{
		ID:           req.ID,
		LoanAmount:   req.LoanAmount,
		TakenOn:      takenOn,
		BankProvider: req.BankProvider,
		LoanStatus:   models.LoanStatus(req.LoanStatus),
	}
	loan, err := h.creditService.UpdateLoan(ctx, c.Param("company_id"), src)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":    loan.Response(),
		"message": "Loan details updated successfully",
		"success": true,
	})
}

// DeleteLoan handles DELETE /credits/:loan_id?company_id=...
func (h *CreditHandlers) DeleteLoan(c echo.Context) error {
	ctx := c.Request().Context()

	loanID, err := strconv.ParseInt(c.Param("loan_id"), 10, 64)
	if err != nil {
		return apperrors.BadRequest("Invalid loan id")
	}
	companyID := c.QueryParam("company_id")
	if companyID == "" {
		return apperrors.BadRequest("company_id query parameter is required")
	}

	if err := h.creditService.DeleteLoan(ctx, companyID, loanID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Loan deleted successfully",
		"success": true,
	})
}
