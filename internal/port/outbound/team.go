package outbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
)

// TeamDatabasePort defines team persistence operations.
// Team reads return the team with its members loaded.
type TeamDatabasePort interface {
	// Create creates a new team. A duplicate name yields the team domain's conflict error.
	Create(ctx context.Context, team *model.Team) error

	// FindByID finds a team by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Team, error)

	// FindByIDForUpdate finds a team by ID and locks the row for the
	// remainder of the surrounding transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Team, error)

	// FindByName finds a team by its unique name.
	FindByName(ctx context.Context, name string) (*model.Team, error)

	// FindByLeader finds the team led by a user.
	FindByLeader(ctx context.Context, leaderID uuid.UUID) (*model.Team, error)

	// FindByIssue finds the team currently holding an issue.
	FindByIssue(ctx context.Context, issueID uuid.UUID) (*model.Team, error)

	// List lists all teams ordered by creation time.
	List(ctx context.Context) ([]*model.Team, error)

	// SetIssue sets or clears (nil) the team's current issue.
	SetIssue(ctx context.Context, teamID uuid.UUID, issueID *uuid.UUID) error

	// Delete deletes a team together with its memberships.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamMemberDatabasePort defines team membership persistence operations.
type TeamMemberDatabasePort interface {
	// Add adds a member to a team.
	Add(ctx context.Context, member *model.TeamMember) error

	// FindByUser finds the membership of a user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*model.TeamMember, error)

	// FindByTeam lists the memberships of a team.
	FindByTeam(ctx context.Context, teamID uuid.UUID) ([]*model.TeamMember, error)

	// Remove removes a member from a team.
	Remove(ctx context.Context, teamID, userID uuid.UUID) error
}
