package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/domain/user"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// UserAdapter implements outbound.UserDatabasePort.
type UserAdapter struct {
	s *Store
}

// NewUserAdapter creates a new user adapter backed by the store.
func NewUserAdapter(s *Store) *UserAdapter {
	return &UserAdapter{s: s}
}

func (a *UserAdapter) Create(ctx context.Context, u *model.User) error {
	return a.s.do(ctx, func(st *state) error {
		for _, existing := range st.users {
			if existing.Email == u.Email {
				return user.ErrEmailTaken
			}
		}
		st.users[u.ID] = *u
		return nil
	})
}

func (a *UserAdapter) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var found *model.User
	err := a.s.do(ctx, func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return user.ErrUserNotFound
		}
		found = &u
		return nil
	})
	return found, err
}

// FindByIDForUpdate is FindByID: transactions are already serialized.
func (a *UserAdapter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return a.FindByID(ctx, id)
}

func (a *UserAdapter) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var found *model.User
	err := a.s.do(ctx, func(st *state) error {
		for _, u := range st.users {
			if u.Email == email {
				found = &u
				return nil
			}
		}
		return user.ErrUserNotFound
	})
	return found, err
}

func (a *UserAdapter) List(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	_ = a.s.do(ctx, func(st *state) error {
		users = make([]*model.User, 0, len(st.users))
		for _, u := range st.users {
			users = append(users, &u)
		}
		return nil
	})

	slices.SortFunc(users, func(x, y *model.User) int {
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		return strings.Compare(x.ID.String(), y.ID.String())
	})
	return users, nil
}

func (a *UserAdapter) IncrementReputation(ctx context.Context, ids []uuid.UUID, delta int) error {
	return a.s.do(ctx, func(st *state) error {
		now := time.Now()
		for _, id := range ids {
			u, ok := st.users[id]
			if !ok {
				continue
			}
			u.Reputation += delta
			u.UpdatedAt = now
			st.users[id] = u
		}
		return nil
	})
}

var _ outbound.UserDatabasePort = (*UserAdapter)(nil)
