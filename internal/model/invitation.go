package model

import (
	"time"

	"github.com/google/uuid"
)

// InvitationStatus represents the state of an invitation.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
)

// InvitationDecision is the recipient's answer to an invitation.
type InvitationDecision string

const (
	InvitationAccept  InvitationDecision = "accept"
	InvitationDecline InvitationDecision = "decline"
)

// IsValid checks if the decision is accept or decline.
func (d InvitationDecision) IsValid() bool {
	return d == InvitationAccept || d == InvitationDecline
}

// Invitation is a pending offer from a team leader to a prospective member.
// Responding deletes it, so only pending invitations are ever stored.
type Invitation struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	TeamID      uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_invitations_team_recipient"`
	SenderID    uuid.UUID        `json:"sender_id" gorm:"type:uuid;not null"`
	RecipientID uuid.UUID        `json:"recipient_id" gorm:"type:uuid;not null;uniqueIndex:idx_invitations_team_recipient;index"`
	Status      InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt   time.Time        `json:"created_at"`
}

// TableName returns the database table name.
func (Invitation) TableName() string {
	return "invitations"
}
