package outbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
)

// BusinessDatabasePort defines business listing persistence operations.
type BusinessDatabasePort interface {
	// Create stores a listing. A second listing for the same owner yields
	// the business domain's conflict error.
	Create(ctx context.Context, business *model.Business) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.Business, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Business, error)

	// FindByOwnerForUpdate finds the owner's listing and locks the row for
	// the remainder of the surrounding transaction.
	FindByOwnerForUpdate(ctx context.Context, ownerID uuid.UUID) (*model.Business, error)

	// List lists all listings, newest first.
	List(ctx context.Context) ([]*model.Business, error)

	Update(ctx context.Context, business *model.Business) error
	Delete(ctx context.Context, id uuid.UUID) error
}
