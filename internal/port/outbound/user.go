package outbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
)

// UserDatabasePort defines user persistence operations.
type UserDatabasePort interface {
	// Create creates a new user. A duplicate email yields the user domain's conflict error.
	Create(ctx context.Context, user *model.User) error

	// FindByID finds a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// FindByIDForUpdate finds a user by ID and locks the row for the
	// remainder of the surrounding transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.User, error)

	// FindByEmail finds a user by email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// List lists all users ordered by name.
	List(ctx context.Context) ([]*model.User, error)

	// IncrementReputation adds delta to the reputation of every listed user.
	IncrementReputation(ctx context.Context, ids []uuid.UUID, delta int) error
}
