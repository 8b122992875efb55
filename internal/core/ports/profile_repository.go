package ports

import (
	"context"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

// ProfileRepository persists the mirrored driver profile rows keyed by
// the provider-issued user id.
type ProfileRepository interface {
	Insert(ctx context.Context, profile *domain.Profile) error
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
}
