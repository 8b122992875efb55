package ports

import (
	"context"
	"time"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

// AddExpenseInput carries a new expense record. DriverID is always the
// session identity; the date defaults to now when zero.
type AddExpenseInput struct {
	DriverID    string
	Date        time.Time
	Category    domain.ExpenseCategory
	Amount      float64
	Description string
	Receipt     string
}

// ExpenseService implements the add/list expense use cases.
type ExpenseService interface {
	AddExpense(ctx context.Context, input AddExpenseInput) (*domain.Expense, error)
	ListExpenses(ctx context.Context, driverID string) ([]domain.Expense, error)
}

// DashboardService produces the mock-derived dashboard dataset.
type DashboardService interface {
	GetDashboard(ctx context.Context, driverID string) (*domain.Dashboard, error)
}
