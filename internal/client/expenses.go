package client

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

// ExpenseStore holds the raw expense list for the signed-in driver.
// Fetch failures empty the list and record the reason instead of
// surfacing an error: the views render an empty state, never crash.
// Aggregates are never cached; Summary recomputes from the raw list
// on every call.
type ExpenseStore struct {
	api    *API
	logger zerolog.Logger

	mu       sync.Mutex
	expenses []domain.Expense
	loading  bool
	fetchErr error
}

func NewExpenseStore(api *API, logger zerolog.Logger) *ExpenseStore {
	return &ExpenseStore{api: api, logger: logger}
}

// Loading reports whether a fetch or add is in flight.
func (s *ExpenseStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Expenses returns the current raw list together with the reason it is
// empty, if the last fetch failed. A nil error with an empty list means
// the driver genuinely has no records.
func (s *ExpenseStore) Expenses() ([]domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expenses, s.fetchErr
}

// Fetch replaces the raw list with the server's. On failure the list is
// emptied and the reason recorded; the error is not returned because
// the views treat a failed fetch as an empty list.
func (s *ExpenseStore) Fetch(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.api.Expenses(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch expenses")
		s.expenses = nil
		s.fetchErr = err
		return
	}
	s.expenses = list
	s.fetchErr = nil
}

// Add records a new expense, then refetches the full list. The refetch
// is the canonical synchronisation strategy: the store never splices
// the created row in optimistically.
func (s *ExpenseStore) Add(ctx context.Context, input ExpenseInput) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if _, err := s.api.AddExpense(ctx, input); err != nil {
		s.logger.Error().Err(err).Msg("add expense failed")
		return err
	}

	list, err := s.api.Expenses(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Error().Err(err).Msg("refetch after add failed")
		s.expenses = nil
		s.fetchErr = err
		return nil
	}
	s.expenses = list
	s.fetchErr = nil
	return nil
}

// Summary recomputes the derived aggregates from the raw list.
func (s *ExpenseStore) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.expenses, time.Now())
}

func (s *ExpenseStore) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}
