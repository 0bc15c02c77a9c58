package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
)

// RegisterUserInput represents the input for registering a user profile.
type RegisterUserInput struct {
	Name  string         `json:"name" binding:"required,max=100"`
	Email string         `json:"email" binding:"required,email"`
	Role  model.UserRole `json:"role" binding:"omitempty,oneof=citizen business"`
}

// UserDomain defines the user directory operations.
type UserDomain interface {
	Register(ctx context.Context, in *RegisterUserInput) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
}
