package invitation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/domain/team"
	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/inbound"
	"github.com/civicteams/server/internal/port/outbound"
	apperrors "github.com/civicteams/server/internal/utils/errors"
)

// Domain brokers invitations from team leaders to users.
//
// An invitation is consumed by the first response. Acceptance re-validates the
// recipient's eligibility at that moment through the team registry.
type Domain struct {
	teamDB       outbound.TeamDatabasePort
	invitationDB outbound.InvitationDatabasePort
	membership   outbound.TeamMembershipPort
	txPort       outbound.TransactionPort
	events       outbound.EventPublisherPort
	logger       *zap.Logger
}

// NewDomain creates a new invitation domain.
func NewDomain(
	teamDB outbound.TeamDatabasePort,
	invitationDB outbound.InvitationDatabasePort,
	membership outbound.TeamMembershipPort,
	txPort outbound.TransactionPort,
	eventPublisher outbound.EventPublisherPort,
	logger *zap.Logger,
) *Domain {
	return &Domain{
		teamDB:       teamDB,
		invitationDB: invitationDB,
		membership:   membership,
		txPort:       txPort,
		events:       eventPublisher,
		logger:       logger,
	}
}

// Invite sends a pending invitation from the team's leader to a recipient.
func (d *Domain) Invite(ctx context.Context, teamID, recipientID, senderID uuid.UUID) (*model.Invitation, error) {
	if recipientID == senderID {
		return nil, ErrSelfInvitation
	}

	var inv *model.Invitation

	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := d.teamDB.FindByIDForUpdate(txCtx, teamID)
		if err != nil {
			return err
		}
		if !t.IsLeader(senderID) {
			return team.ErrNotLeader
		}

		if err := d.membership.CheckEligible(txCtx, teamID, recipientID); err != nil {
			return err
		}

		pending, err := d.invitationDB.FindPending(txCtx, teamID, recipientID)
		if err != nil && !errors.Is(err, ErrInvitationNotFound) {
			return err
		}
		if pending != nil {
			return ErrDuplicateInvitation
		}

		inv = &model.Invitation{
			ID:          uuid.New(),
			TeamID:      teamID,
			SenderID:    senderID,
			RecipientID: recipientID,
			Status:      model.InvitationStatusPending,
			CreatedAt:   time.Now(),
		}
		return d.invitationDB.Create(txCtx, inv)
	})
	if err != nil {
		return nil, err
	}

	d.events.Publish(events.NewInvitationEvent(events.InvitationSentType, inv.ID, teamID, recipientID, ""))
	d.logger.Info("invitation sent",
		zap.String("invitation_id", inv.ID.String()),
		zap.String("team_id", teamID.String()),
		zap.String("recipient_id", recipientID.String()),
	)

	return inv, nil
}

// Respond accepts or declines an invitation on behalf of its recipient.
//
// The invitation is consumed whichever way the answer goes. When an accepted
// invitation can no longer be honored because the recipient or the team has
// changed, the invitation is still consumed and the eligibility error is
// returned.
func (d *Domain) Respond(ctx context.Context, invitationID, responderID uuid.UUID, decision model.InvitationDecision) (*inbound.RespondOutput, error) {
	if !decision.IsValid() {
		return nil, ErrInvalidDecision
	}

	var (
		inv     *model.Invitation
		joined  *model.Team
		joinErr error
	)

	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		inv, err = d.invitationDB.FindByID(txCtx, invitationID)
		if err != nil {
			return err
		}
		if inv.RecipientID != responderID {
			return ErrNotRecipient
		}

		if decision == model.InvitationAccept {
			joined, joinErr = d.membership.Join(txCtx, inv.TeamID, responderID)
			if joinErr != nil && !apperrors.IsDomain(joinErr) {
				return joinErr
			}
		}

		// A missing row means a concurrent response consumed it first.
		return d.invitationDB.Delete(txCtx, invitationID)
	})
	if err != nil {
		return nil, err
	}

	outcome := string(decision)
	if joinErr != nil {
		outcome = "rejected"
	}
	if joined != nil {
		d.events.Publish(events.NewTeamEvent(events.MemberJoinedType, joined.ID, responderID))
	}
	d.events.Publish(events.NewInvitationEvent(events.InvitationRespondedType, inv.ID, inv.TeamID, inv.RecipientID, outcome))
	d.logger.Info("invitation answered",
		zap.String("invitation_id", inv.ID.String()),
		zap.String("team_id", inv.TeamID.String()),
		zap.String("outcome", outcome),
	)

	if joinErr != nil {
		return nil, joinErr
	}

	return &inbound.RespondOutput{
		InvitationID: inv.ID,
		Decision:     decision,
		Team:         joined,
	}, nil
}

// ListInvitations lists the pending invitations addressed to a user.
func (d *Domain) ListInvitations(ctx context.Context, recipientID uuid.UUID) ([]*model.Invitation, error) {
	return d.invitationDB.ListByRecipient(ctx, recipientID)
}

// Compile-time interface check.
var _ inbound.InvitationDomain = (*Domain)(nil)
