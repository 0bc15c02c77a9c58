package model

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a volunteer team. The leader is always one of the members.
type Team struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string     `json:"name" gorm:"uniqueIndex;not null"`
	LeaderID  uuid.UUID  `json:"leader_id" gorm:"type:uuid;uniqueIndex;not null"`
	IssueID   *uuid.UUID `json:"issue_id,omitempty" gorm:"type:uuid;uniqueIndex"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations (loaded by the store on reads)
	Members []TeamMember `json:"members" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name.
func (Team) TableName() string {
	return "teams"
}

// IsLeader returns true if the user leads the team.
func (t *Team) IsLeader(userID uuid.UUID) bool {
	return t.LeaderID == userID
}

// HasMember returns true if the user is among the loaded members.
func (t *Team) HasMember(userID uuid.UUID) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// MemberIDs returns the IDs of the loaded members.
func (t *Team) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}

// HasIssue returns true if the team currently holds an issue.
func (t *Team) HasIssue() bool {
	return t.IssueID != nil
}

// TeamMember links a user to the single team they belong to.
type TeamMember struct {
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;uniqueIndex:idx_team_members_user"`
	JoinedAt time.Time `json:"joined_at"`
}

// TableName returns the database table name.
func (TeamMember) TableName() string {
	return "team_members"
}
