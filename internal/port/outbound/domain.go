package outbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
)

// IssueLifecyclePort drives issue status transitions on behalf of team operations.
type IssueLifecyclePort interface {
	TransitionToAssigned(ctx context.Context, id uuid.UUID) (*model.Issue, error)
	TransitionToReported(ctx context.Context, id uuid.UUID) (*model.Issue, error)
	TransitionToResolved(ctx context.Context, id uuid.UUID) (*model.Issue, error)
}

// TeamMembershipPort exposes the team registry's eligibility rules to the
// invitation broker.
type TeamMembershipPort interface {
	// CheckEligible reports why a user may not join the team, or nil.
	CheckEligible(ctx context.Context, teamID, userID uuid.UUID) error

	// Join adds the user to the team after re-checking eligibility.
	Join(ctx context.Context, teamID, userID uuid.UUID) (*model.Team, error)
}
