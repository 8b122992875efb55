package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
	"github.com/boltdash/driver-dashboard/internal/core/ports"
)

var (
	ErrUnknownCategory = errors.New("unknown expense category")
	ErrNegativeAmount  = errors.New("amount must not be negative")
)

// ExpenseService implements adding and listing expense records. All
// scoping uses the driver id the session middleware attached; there is
// no path for a client-supplied id to reach the repository.
type ExpenseService struct {
	repo   ports.ExpenseRepository
	logger zerolog.Logger
}

func NewExpenseService(repo ports.ExpenseRepository, logger zerolog.Logger) *ExpenseService {
	return &ExpenseService{repo: repo, logger: logger}
}

// AddExpense validates and persists a new record for the session
// driver, returning the stored row with its assigned id.
func (s *ExpenseService) AddExpense(ctx context.Context, input ports.AddExpenseInput) (*domain.Expense, error) {
	if !input.Category.Valid() {
		return nil, ErrUnknownCategory
	}
	if input.Amount < 0 {
		return nil, ErrNegativeAmount
	}

	now := time.Now().UTC()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	created, err := s.repo.Insert(ctx, &domain.Expense{
		DriverID:    input.DriverID,
		Date:        date,
		Category:    input.Category,
		Amount:      input.Amount,
		Description: input.Description,
		Receipt:     input.Receipt,
		CreatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("driver_id", input.DriverID).Msg("failed to save expense")
		return nil, err
	}

	s.logger.Info().
		Str("driver_id", input.DriverID).
		Str("category", string(created.Category)).
		Float64("amount", created.Amount).
		Msg("expense recorded")
	return created, nil
}

// ListExpenses returns every record for the driver in store-default
// order. Sorting, filtering and pagination are client concerns.
func (s *ExpenseService) ListExpenses(ctx context.Context, driverID string) ([]domain.Expense, error) {
	return s.repo.ListByDriver(ctx, driverID)
}
