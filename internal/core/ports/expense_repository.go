package ports

import (
	"context"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

// ExpenseRepository persists expense rows scoped by driver id.
// ListByDriver returns rows in store-default order; callers must not
// assume any ordering.
type ExpenseRepository interface {
	Insert(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	ListByDriver(ctx context.Context, driverID string) ([]domain.Expense, error)
}
