// Package memory provides in-process implementations of the persistence
// ports. Transactions are serialized and run against a copy of the data
// that replaces the committed copy only when the transaction succeeds.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

type state struct {
	users       map[uuid.UUID]model.User
	teams       map[uuid.UUID]model.Team
	members     map[uuid.UUID]model.TeamMember // keyed by user
	issues      map[uuid.UUID]model.Issue
	invitations map[uuid.UUID]model.Invitation
	businesses  map[uuid.UUID]model.Business
}

func newState() *state {
	return &state{
		users:       make(map[uuid.UUID]model.User),
		teams:       make(map[uuid.UUID]model.Team),
		members:     make(map[uuid.UUID]model.TeamMember),
		issues:      make(map[uuid.UUID]model.Issue),
		invitations: make(map[uuid.UUID]model.Invitation),
		businesses:  make(map[uuid.UUID]model.Business),
	}
}

// clone copies the maps. Stored values are replaced, never mutated in place,
// so sharing them between copies is safe.
func (st *state) clone() *state {
	return &state{
		users:       maps.Clone(st.users),
		teams:       maps.Clone(st.teams),
		members:     maps.Clone(st.members),
		issues:      maps.Clone(st.issues),
		invitations: maps.Clone(st.invitations),
		businesses:  maps.Clone(st.businesses),
	}
}

type txContextKey struct{}

// Store holds all records in memory.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

// RunInTransaction implements outbound.TransactionPort. A context that already
// carries a transaction joins it.
func (s *Store) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txContextKey{}).(*state); ok {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(context.WithValue(ctx, txContextKey{}, work)); err != nil {
		return err
	}
	s.st = work
	return nil
}

// do runs fn against the transaction in ctx, or against the committed data
// under the store lock.
func (s *Store) do(ctx context.Context, fn func(st *state) error) error {
	if st, ok := ctx.Value(txContextKey{}).(*state); ok {
		return fn(st)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

var _ outbound.TransactionPort = (*Store)(nil)
