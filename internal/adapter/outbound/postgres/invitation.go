package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/civicteams/server/internal/domain/invitation"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// InvitationAdapter implements InvitationDatabasePort.
type InvitationAdapter struct {
	db *gorm.DB
}

// NewInvitationAdapter creates a new invitation adapter.
func NewInvitationAdapter(db *gorm.DB) *InvitationAdapter {
	return &InvitationAdapter{db: db}
}

func (a *InvitationAdapter) Create(ctx context.Context, inv *model.Invitation) error {
	err := conn(ctx, a.db).Create(inv).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return invitation.ErrDuplicateInvitation
	}
	return err
}

func (a *InvitationAdapter) FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	return a.first(conn(ctx, a.db).Where("id = ?", id))
}

func (a *InvitationAdapter) FindPending(ctx context.Context, teamID, recipientID uuid.UUID) (*model.Invitation, error) {
	return a.first(conn(ctx, a.db).
		Where("team_id = ? AND recipient_id = ? AND status = ?", teamID, recipientID, model.InvitationStatusPending))
}

func (a *InvitationAdapter) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*model.Invitation, error) {
	var invitations []*model.Invitation
	err := conn(ctx, a.db).
		Where("recipient_id = ? AND status = ?", recipientID, model.InvitationStatusPending).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// Delete removes the invitation. Under concurrent responses only the first
// delete affects a row; the rest see ErrInvitationNotFound.
func (a *InvitationAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, a.db).Where("id = ?", id).Delete(&model.Invitation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return invitation.ErrInvitationNotFound
	}
	return nil
}

func (a *InvitationAdapter) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return conn(ctx, a.db).Where("team_id = ?", teamID).Delete(&model.Invitation{}).Error
}

func (a *InvitationAdapter) first(query *gorm.DB) (*model.Invitation, error) {
	var inv model.Invitation
	if err := query.First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invitation.ErrInvitationNotFound
		}
		return nil, err
	}
	return &inv, nil
}

var _ outbound.InvitationDatabasePort = (*InvitationAdapter)(nil)
