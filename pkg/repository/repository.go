package repository

import (
	"context"

	"github.com/netpost/stringshop/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Reads return (nil, nil) when no row matches. Mutations on a single row
// return an applied flag so callers must handle the not-found case instead
// of dereferencing a missing record.

type RacketRepo interface {
	CreateRacket(ctx context.Context, r *models.Racket) (int64, error)
	GetRacket(ctx context.Context, id int64) (*models.Racket, error)
	// ListRackets returns every job ordered by status descending, then
	// creation time descending.
	ListRackets(ctx context.Context) ([]models.Racket, error)
	// UpdateWorkflow overwrites status, stringer and payment on one job and
	// refreshes updated_on. Customer and equipment fields are not touched.
	UpdateWorkflow(ctx context.Context, id int64, status models.Status, stringer string, payment bool) (bool, error)
	DeleteRacket(ctx context.Context, id int64) (bool, error)
	CountCreatedSince(ctx context.Context, since int64) (int64, error)
	CountFinishedSince(ctx context.Context, since int64) (int64, error)
}

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
