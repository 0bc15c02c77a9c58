package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/domain/business"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// BusinessAdapter implements outbound.BusinessDatabasePort.
type BusinessAdapter struct {
	s *Store
}

// NewBusinessAdapter creates a new business adapter backed by the store.
func NewBusinessAdapter(s *Store) *BusinessAdapter {
	return &BusinessAdapter{s: s}
}

func (a *BusinessAdapter) Create(ctx context.Context, b *model.Business) error {
	return a.s.do(ctx, func(st *state) error {
		for _, existing := range st.businesses {
			if existing.OwnerID == b.OwnerID {
				return business.ErrListingExists
			}
		}
		st.businesses[b.ID] = *b.Clone()
		return nil
	})
}

func (a *BusinessAdapter) FindByID(ctx context.Context, id uuid.UUID) (*model.Business, error) {
	var found *model.Business
	err := a.s.do(ctx, func(st *state) error {
		b, ok := st.businesses[id]
		if !ok {
			return business.ErrBusinessNotFound
		}
		found = b.Clone()
		return nil
	})
	return found, err
}

func (a *BusinessAdapter) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Business, error) {
	var found *model.Business
	err := a.s.do(ctx, func(st *state) error {
		for _, b := range st.businesses {
			if b.OwnerID == ownerID {
				found = b.Clone()
				return nil
			}
		}
		return business.ErrBusinessNotFound
	})
	return found, err
}

// FindByOwnerForUpdate is FindByOwner: transactions are already serialized.
func (a *BusinessAdapter) FindByOwnerForUpdate(ctx context.Context, ownerID uuid.UUID) (*model.Business, error) {
	return a.FindByOwner(ctx, ownerID)
}

func (a *BusinessAdapter) List(ctx context.Context) ([]*model.Business, error) {
	var businesses []*model.Business
	_ = a.s.do(ctx, func(st *state) error {
		businesses = make([]*model.Business, 0, len(st.businesses))
		for _, b := range st.businesses {
			businesses = append(businesses, b.Clone())
		}
		return nil
	})

	slices.SortFunc(businesses, func(x, y *model.Business) int {
		if c := y.CreatedAt.Compare(x.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(x.ID.String(), y.ID.String())
	})
	return businesses, nil
}

func (a *BusinessAdapter) Update(ctx context.Context, b *model.Business) error {
	return a.s.do(ctx, func(st *state) error {
		current, ok := st.businesses[b.ID]
		if !ok {
			return business.ErrBusinessNotFound
		}
		next := *b.Clone()
		next.OwnerID = current.OwnerID
		next.CreatedAt = current.CreatedAt
		st.businesses[b.ID] = next
		return nil
	})
}

func (a *BusinessAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	return a.s.do(ctx, func(st *state) error {
		if _, ok := st.businesses[id]; !ok {
			return business.ErrBusinessNotFound
		}
		delete(st.businesses, id)
		return nil
	})
}

var _ outbound.BusinessDatabasePort = (*BusinessAdapter)(nil)
