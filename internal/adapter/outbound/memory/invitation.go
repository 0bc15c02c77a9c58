package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/domain/invitation"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// InvitationAdapter implements outbound.InvitationDatabasePort.
type InvitationAdapter struct {
	s *Store
}

// NewInvitationAdapter creates a new invitation adapter backed by the store.
func NewInvitationAdapter(s *Store) *InvitationAdapter {
	return &InvitationAdapter{s: s}
}

func (a *InvitationAdapter) Create(ctx context.Context, inv *model.Invitation) error {
	return a.s.do(ctx, func(st *state) error {
		for _, existing := range st.invitations {
			if existing.TeamID == inv.TeamID && existing.RecipientID == inv.RecipientID {
				return invitation.ErrDuplicateInvitation
			}
		}
		st.invitations[inv.ID] = *inv
		return nil
	})
}

func (a *InvitationAdapter) FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	var found *model.Invitation
	err := a.s.do(ctx, func(st *state) error {
		inv, ok := st.invitations[id]
		if !ok {
			return invitation.ErrInvitationNotFound
		}
		found = &inv
		return nil
	})
	return found, err
}

func (a *InvitationAdapter) FindPending(ctx context.Context, teamID, recipientID uuid.UUID) (*model.Invitation, error) {
	var found *model.Invitation
	err := a.s.do(ctx, func(st *state) error {
		for _, inv := range st.invitations {
			if inv.TeamID == teamID && inv.RecipientID == recipientID && inv.Status == model.InvitationStatusPending {
				found = &inv
				return nil
			}
		}
		return invitation.ErrInvitationNotFound
	})
	return found, err
}

func (a *InvitationAdapter) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*model.Invitation, error) {
	invitations := []*model.Invitation{}
	_ = a.s.do(ctx, func(st *state) error {
		for _, inv := range st.invitations {
			if inv.RecipientID == recipientID && inv.Status == model.InvitationStatusPending {
				invitations = append(invitations, &inv)
			}
		}
		return nil
	})

	slices.SortFunc(invitations, func(x, y *model.Invitation) int {
		return y.CreatedAt.Compare(x.CreatedAt)
	})
	return invitations, nil
}

func (a *InvitationAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	return a.s.do(ctx, func(st *state) error {
		if _, ok := st.invitations[id]; !ok {
			return invitation.ErrInvitationNotFound
		}
		delete(st.invitations, id)
		return nil
	})
}

func (a *InvitationAdapter) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return a.s.do(ctx, func(st *state) error {
		for id, inv := range st.invitations {
			if inv.TeamID == teamID {
				delete(st.invitations, id)
			}
		}
		return nil
	})
}

var _ outbound.InvitationDatabasePort = (*InvitationAdapter)(nil)
