package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/inbound"
	apperrors "github.com/civicteams/server/internal/utils/errors"
)

type mockUserDB struct {
	mock.Mock
}

func (m *mockUserDB) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserDB) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserDB) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserDB) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserDB) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *mockUserDB) IncrementReputation(ctx context.Context, ids []uuid.UUID, delta int) error {
	args := m.Called(ctx, ids, delta)
	return args.Error(0)
}

func TestDomain_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success_defaults_to_citizen", func(t *testing.T) {
		userDB := new(mockUserDB)
		d := NewDomain(userDB, zap.NewNop())

		userDB.On("FindByEmail", ctx, "ana@example.com").Return(nil, ErrUserNotFound)
		userDB.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(nil)

		u, err := d.Register(ctx, &inbound.RegisterUserInput{Name: " Ana ", Email: "Ana@Example.com"})

		require.NoError(t, err)
		assert.Equal(t, "Ana", u.Name)
		assert.Equal(t, "ana@example.com", u.Email)
		assert.Equal(t, model.UserRoleCitizen, u.Role)
		assert.Zero(t, u.Reputation)
		assert.NotEqual(t, uuid.Nil, u.ID)
		userDB.AssertExpectations(t)
	})

	t.Run("business_role", func(t *testing.T) {
		userDB := new(mockUserDB)
		d := NewDomain(userDB, zap.NewNop())

		userDB.On("FindByEmail", ctx, "shop@example.com").Return(nil, ErrUserNotFound)
		userDB.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(nil)

		u, err := d.Register(ctx, &inbound.RegisterUserInput{Name: "Shop", Email: "shop@example.com", Role: model.UserRoleBusiness})

		require.NoError(t, err)
		assert.True(t, u.IsBusiness())
	})

	t.Run("duplicate_email", func(t *testing.T) {
		userDB := new(mockUserDB)
		d := NewDomain(userDB, zap.NewNop())

		userDB.On("FindByEmail", ctx, "ana@example.com").Return(&model.User{ID: uuid.New()}, nil)

		_, err := d.Register(ctx, &inbound.RegisterUserInput{Name: "Ana", Email: "ana@example.com"})

		assert.Equal(t, ErrEmailTaken, err)
		assert.True(t, errors.Is(err, apperrors.ErrConflict))
		userDB.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation", func(t *testing.T) {
		d := NewDomain(new(mockUserDB), zap.NewNop())

		tests := []struct {
			name string
			in   *inbound.RegisterUserInput
			want error
		}{
			{"nil_input", nil, ErrInvalidName},
			{"blank_name", &inbound.RegisterUserInput{Name: "  ", Email: "a@b.c"}, ErrInvalidName},
			{"bad_email", &inbound.RegisterUserInput{Name: "A", Email: "not-an-email"}, ErrInvalidEmail},
			{"display_name_email", &inbound.RegisterUserInput{Name: "A", Email: "A <a@b.c>"}, ErrInvalidEmail},
			{"bad_role", &inbound.RegisterUserInput{Name: "A", Email: "a@b.c", Role: "mayor"}, ErrInvalidRole},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := d.Register(ctx, tt.in)
				assert.Equal(t, tt.want, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
			})
		}
	})

	t.Run("store_failure_propagates", func(t *testing.T) {
		userDB := new(mockUserDB)
		d := NewDomain(userDB, zap.NewNop())
		storeErr := errors.New("connection refused")

		userDB.On("FindByEmail", ctx, "ana@example.com").Return(nil, storeErr)

		_, err := d.Register(ctx, &inbound.RegisterUserInput{Name: "Ana", Email: "ana@example.com"})
		assert.Equal(t, storeErr, err)
	})
}

func TestDomain_GetUser(t *testing.T) {
	ctx := context.Background()
	userDB := new(mockUserDB)
	d := NewDomain(userDB, zap.NewNop())
	id := uuid.New()

	userDB.On("FindByID", ctx, id).Return(nil, ErrUserNotFound)

	_, err := d.GetUser(ctx, id)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
