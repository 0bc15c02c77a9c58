package outbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
)

// InvitationDatabasePort defines invitation persistence operations.
type InvitationDatabasePort interface {
	// Create creates a new invitation.
	Create(ctx context.Context, invitation *model.Invitation) error

	// FindByID finds an invitation by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error)

	// FindPending finds the pending invitation from a team to a recipient.
	FindPending(ctx context.Context, teamID, recipientID uuid.UUID) (*model.Invitation, error)

	// ListByRecipient lists invitations addressed to a user, newest first.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*model.Invitation, error)

	// Delete deletes an invitation. Deleting a missing invitation yields the
	// invitation domain's not-found error, so concurrent responders see exactly
	// one success.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByTeam deletes every invitation to a team.
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}
