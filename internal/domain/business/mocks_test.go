package business

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/model"
)

type mockBusinessDB struct {
	mock.Mock
}

func (m *mockBusinessDB) Create(ctx context.Context, b *model.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBusinessDB) FindByID(ctx context.Context, id uuid.UUID) (*model.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *mockBusinessDB) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *mockBusinessDB) FindByOwnerForUpdate(ctx context.Context, ownerID uuid.UUID) (*model.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *mockBusinessDB) List(ctx context.Context) ([]*model.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Business), args.Error(1)
}

func (m *mockBusinessDB) Update(ctx context.Context, b *model.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBusinessDB) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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

type mockTransaction struct{}

func (mockTransaction) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	types []string
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.types = append(p.types, event.EventType())
}
