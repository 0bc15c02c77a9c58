package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
)

// InviteInput represents the input for inviting a user to a team.
type InviteInput struct {
	RecipientID uuid.UUID `json:"recipient_id" binding:"required"`
}

// RespondInput represents a recipient's answer to an invitation.
type RespondInput struct {
	Decision model.InvitationDecision `json:"decision" binding:"required,oneof=accept decline"`
}

// RespondOutput describes the outcome of a response. Team is set when the
// recipient joined.
type RespondOutput struct {
	InvitationID uuid.UUID                `json:"invitation_id"`
	Decision     model.InvitationDecision `json:"decision"`
	Team         *model.Team              `json:"team,omitempty"`
}

// InvitationDomain defines invitation broker operations.
type InvitationDomain interface {
	Invite(ctx context.Context, teamID, recipientID, senderID uuid.UUID) (*model.Invitation, error)
	Respond(ctx context.Context, invitationID, responderID uuid.UUID, decision model.InvitationDecision) (*RespondOutput, error)
	ListInvitations(ctx context.Context, recipientID uuid.UUID) ([]*model.Invitation, error)
}
