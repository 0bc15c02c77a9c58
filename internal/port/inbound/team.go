package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
)

// CreateTeamInput represents the input for creating a team.
type CreateTeamInput struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// AddMemberInput represents the input for adding a team member.
type AddMemberInput struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// TeamDomain defines team registry operations.
type TeamDomain interface {
	CreateTeam(ctx context.Context, founderID uuid.UUID, in *CreateTeamInput) (*model.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*model.Team, error)
	ListTeams(ctx context.Context) ([]*model.Team, error)
	GetTeamOfUser(ctx context.Context, userID uuid.UUID) (*model.Team, error)

	AddMember(ctx context.Context, teamID, userID, actorID uuid.UUID) (*model.Team, error)
	RemoveMember(ctx context.Context, teamID, userID, actorID uuid.UUID) (*model.Team, error)
	LeaveTeam(ctx context.Context, teamID, actorID uuid.UUID) error

	// Disband deletes the team, returning its current issue to Reported.
	// The released issue is returned, or nil if the team held none.
	Disband(ctx context.Context, teamID, actorID uuid.UUID) (*model.Issue, error)
}

// AssignIssueInput represents the input for claiming an issue.
type AssignIssueInput struct {
	IssueID uuid.UUID `json:"issue_id" binding:"required"`
}

// AssignmentOutput is a team together with the issue an assignment operation touched.
type AssignmentOutput struct {
	Team  *model.Team  `json:"team"`
	Issue *model.Issue `json:"issue"`
}

// AssignmentDomain defines operations linking teams and issues.
type AssignmentDomain interface {
	AssignIssue(ctx context.Context, teamID, issueID, actorID uuid.UUID) (*AssignmentOutput, error)
	UnassignIssue(ctx context.Context, teamID, actorID uuid.UUID) (*AssignmentOutput, error)
	ResolveIssue(ctx context.Context, teamID, actorID uuid.UUID) (*AssignmentOutput, error)
}
