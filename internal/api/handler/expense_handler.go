package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/boltdash/driver-dashboard/internal/api/metrics"
	"github.com/boltdash/driver-dashboard/internal/core/domain"
	"github.com/boltdash/driver-dashboard/internal/core/ports"
)

// ExpenseHandler serves expense creation and listing, always scoped to
// the session identity.
type ExpenseHandler struct {
	service ports.ExpenseService
}

func NewExpenseHandler(service ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

type addExpenseRequest struct {
	Date        string  `json:"date"`
	Category    string  `json:"category" validate:"required,oneof=fuel maintenance insurance airtime other"`
	Amount      float64 `json:"amount" validate:"required,gte=0"`
	Description string  `json:"description"`
	Receipt     string  `json:"receipt"`
}

type addExpenseResponse struct {
	Message string          `json:"message"`
	Expense *domain.Expense `json:"expense"`
}

type listExpensesResponse struct {
	Expenses []domain.Expense `json:"expenses"`
}

// Add records a new expense for the authenticated driver.
//
// @Summary      Record an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body      addExpenseRequest  true  "Expense fields"
// @Success      201   {object}  addExpenseResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/add [post]
func (h *ExpenseHandler) Add(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			// Bare dates from the expense form come without a time part.
			parsed, err = time.Parse("2006-01-02", req.Date)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "date must be RFC 3339 or YYYY-MM-DD")
			}
		}
		date = parsed
	}

	created, err := h.service.AddExpense(c.Request().Context(), ports.AddExpenseInput{
		DriverID:    userID,
		Date:        date,
		Category:    domain.ExpenseCategory(req.Category),
		Amount:      req.Amount,
		Description: req.Description,
		Receipt:     req.Receipt,
	})
	if err != nil {
		return err
	}

	metrics.ExpensesRecordedTotal.WithLabelValues(string(created.Category)).Inc()

	return c.JSON(http.StatusCreated, addExpenseResponse{
		Message: "Expense saved successfully",
		Expense: created,
	})
}

// List returns every expense for the authenticated driver. No
// pagination and no ordering guarantee: aggregation happens client-side
// over the full list.
//
// @Summary      List the authenticated driver's expenses
// @Tags         expenses
// @Produce      json
// @Success      200  {object}  listExpensesResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	expenses, err := h.service.ListExpenses(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}

	return c.JSON(http.StatusOK, listExpensesResponse{Expenses: expenses})
}
