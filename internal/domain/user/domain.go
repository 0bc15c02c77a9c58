package user

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/inbound"
	"github.com/civicteams/server/internal/port/outbound"
)

const maxNameLength = 100

// Domain implements the user directory.
type Domain struct {
	userDB outbound.UserDatabasePort
	logger *zap.Logger
}

// NewDomain creates a new user domain.
func NewDomain(userDB outbound.UserDatabasePort, logger *zap.Logger) *Domain {
	return &Domain{
		userDB: userDB,
		logger: logger,
	}
}

// Register creates a user profile. Credentials are managed by the identity
// provider; the returned ID is what its tokens carry as subject.
func (d *Domain) Register(ctx context.Context, in *inbound.RegisterUserInput) (*model.User, error) {
	if in == nil {
		return nil, ErrInvalidName
	}

	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return nil, ErrInvalidName
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, ErrInvalidEmail
	}

	role := in.Role
	if role == "" {
		role = model.UserRoleCitizen
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	existing, err := d.userDB.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	now := time.Now()
	u := &model.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := d.userDB.Create(ctx, u); err != nil {
		return nil, err
	}

	d.logger.Info("user registered",
		zap.String("user_id", u.ID.String()),
		zap.String("role", string(u.Role)),
	)

	return u, nil
}

// GetUser returns a user by ID.
func (d *Domain) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return d.userDB.FindByID(ctx, id)
}

// ListUsers returns all users.
func (d *Domain) ListUsers(ctx context.Context) ([]*model.User, error) {
	return d.userDB.List(ctx)
}

// Compile-time interface check.
var _ inbound.UserDomain = (*Domain)(nil)
