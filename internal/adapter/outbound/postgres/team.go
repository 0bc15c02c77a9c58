package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/civicteams/server/internal/domain/team"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// ========== Team Adapter ==========

// TeamAdapter implements TeamDatabasePort.
type TeamAdapter struct {
	db *gorm.DB
}

// NewTeamAdapter creates a new team adapter.
func NewTeamAdapter(db *gorm.DB) *TeamAdapter {
	return &TeamAdapter{db: db}
}

func (a *TeamAdapter) Create(ctx context.Context, t *model.Team) error {
	err := conn(ctx, a.db).Omit("Members").Create(t).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return team.ErrTeamNameTaken
	}
	return err
}

func (a *TeamAdapter) FindByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	return a.first(conn(ctx, a.db).Where("id = ?", id))
}

// FindByIDForUpdate locks the team row only. Members are loaded by a separate
// plain query, since FOR UPDATE cannot be combined with the preload.
func (a *TeamAdapter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	var t model.Team
	err := forUpdate(conn(ctx, a.db)).Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, team.ErrTeamNotFound
		}
		return nil, err
	}

	err = conn(ctx, a.db).
		Where("team_id = ?", id).
		Order("joined_at ASC").
		Find(&t.Members).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (a *TeamAdapter) FindByName(ctx context.Context, name string) (*model.Team, error) {
	return a.first(conn(ctx, a.db).Where("name = ?", name))
}

func (a *TeamAdapter) FindByLeader(ctx context.Context, leaderID uuid.UUID) (*model.Team, error) {
	return a.first(conn(ctx, a.db).Where("leader_id = ?", leaderID))
}

func (a *TeamAdapter) FindByIssue(ctx context.Context, issueID uuid.UUID) (*model.Team, error) {
	return a.first(conn(ctx, a.db).Where("issue_id = ?", issueID))
}

func (a *TeamAdapter) List(ctx context.Context) ([]*model.Team, error) {
	var teams []*model.Team
	err := conn(ctx, a.db).
		Preload("Members", orderMembers).
		Order("created_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (a *TeamAdapter) SetIssue(ctx context.Context, teamID uuid.UUID, issueID *uuid.UUID) error {
	result := conn(ctx, a.db).
		Model(&model.Team{}).
		Where("id = ?", teamID).
		Updates(map[string]any{"issue_id": issueID, "updated_at": gorm.Expr("NOW()")})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return team.ErrTeamNotFound
	}
	return nil
}

func (a *TeamAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	db := conn(ctx, a.db)
	if err := db.Where("team_id = ?", id).Delete(&model.TeamMember{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&model.Team{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return team.ErrTeamNotFound
	}
	return nil
}

func (a *TeamAdapter) first(query *gorm.DB) (*model.Team, error) {
	var t model.Team
	if err := query.Preload("Members", orderMembers).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, team.ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func orderMembers(db *gorm.DB) *gorm.DB {
	return db.Order("joined_at ASC")
}

// ========== Member Adapter ==========

// TeamMemberAdapter implements TeamMemberDatabasePort.
type TeamMemberAdapter struct {
	db *gorm.DB
}

// NewTeamMemberAdapter creates a new team member adapter.
func NewTeamMemberAdapter(db *gorm.DB) *TeamMemberAdapter {
	return &TeamMemberAdapter{db: db}
}

// Add inserts a membership. The unique index on user_id backs the
// one-team-per-user rule.
func (a *TeamMemberAdapter) Add(ctx context.Context, member *model.TeamMember) error {
	err := conn(ctx, a.db).Create(member).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return team.ErrMemberOfAnotherTeam
	}
	return err
}

func (a *TeamMemberAdapter) FindByUser(ctx context.Context, userID uuid.UUID) (*model.TeamMember, error) {
	var member model.TeamMember
	err := conn(ctx, a.db).Where("user_id = ?", userID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, team.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (a *TeamMemberAdapter) FindByTeam(ctx context.Context, teamID uuid.UUID) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	err := conn(ctx, a.db).
		Where("team_id = ?", teamID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (a *TeamMemberAdapter) Remove(ctx context.Context, teamID, userID uuid.UUID) error {
	result := conn(ctx, a.db).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&model.TeamMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return team.ErrMemberNotFound
	}
	return nil
}

// Compile-time interface checks
var (
	_ outbound.TeamDatabasePort       = (*TeamAdapter)(nil)
	_ outbound.TeamMemberDatabasePort = (*TeamMemberAdapter)(nil)
)
