package assignment

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/domain/team"
	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/inbound"
	"github.com/civicteams/server/internal/port/outbound"
)

// Domain coordinates teams and the issue lifecycle.
//
// Each operation locks the team row, then the issue row, and performs the
// status transition and the team link update in one transaction, so a team
// holds at most one issue and an issue is held by at most one team.
type Domain struct {
	teamDB    outbound.TeamDatabasePort
	issueDB   outbound.IssueDatabasePort
	userDB    outbound.UserDatabasePort
	lifecycle outbound.IssueLifecyclePort
	txPort    outbound.TransactionPort
	events    outbound.EventPublisherPort
	cfg       *Config
	logger    *zap.Logger
}

// NewDomain creates a new assignment domain.
func NewDomain(
	teamDB outbound.TeamDatabasePort,
	issueDB outbound.IssueDatabasePort,
	userDB outbound.UserDatabasePort,
	lifecycle outbound.IssueLifecyclePort,
	txPort outbound.TransactionPort,
	eventPublisher outbound.EventPublisherPort,
	cfg *Config,
	logger *zap.Logger,
) *Domain {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Domain{
		teamDB:    teamDB,
		issueDB:   issueDB,
		userDB:    userDB,
		lifecycle: lifecycle,
		txPort:    txPort,
		events:    eventPublisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// AssignIssue makes a Reported issue the team's current issue.
func (d *Domain) AssignIssue(ctx context.Context, teamID, issueID, actorID uuid.UUID) (*inbound.AssignmentOutput, error) {
	var out *inbound.AssignmentOutput

	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := d.lockAsLeader(txCtx, teamID, actorID)
		if err != nil {
			return err
		}
		if t.HasIssue() {
			return ErrTeamHasIssue
		}

		current, err := d.issueDB.FindByIDForUpdate(txCtx, issueID)
		if err != nil {
			return err
		}
		if current.Status == model.IssueStatusAssigned {
			return ErrIssueClaimed
		}

		issue, err := d.lifecycle.TransitionToAssigned(txCtx, issueID)
		if err != nil {
			return err
		}
		if err := d.teamDB.SetIssue(txCtx, teamID, &issueID); err != nil {
			return err
		}

		t.IssueID = &issueID
		out = &inbound.AssignmentOutput{Team: t, Issue: issue}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.statusChanged(out, model.IssueStatusReported)
	d.logger.Info("issue assigned",
		zap.String("team_id", teamID.String()),
		zap.String("issue_id", issueID.String()),
	)

	return out, nil
}

// UnassignIssue hands the team's current issue back to the Reported pool.
func (d *Domain) UnassignIssue(ctx context.Context, teamID, actorID uuid.UUID) (*inbound.AssignmentOutput, error) {
	out, err := d.release(ctx, teamID, actorID, d.lifecycle.TransitionToReported, false)
	if err != nil {
		return nil, err
	}

	d.statusChanged(out, model.IssueStatusAssigned)
	d.logger.Info("issue unassigned",
		zap.String("team_id", teamID.String()),
		zap.String("issue_id", out.Issue.ID.String()),
	)

	return out, nil
}

// ResolveIssue marks the team's current issue Resolved, frees the team to
// take another one and rewards its members.
func (d *Domain) ResolveIssue(ctx context.Context, teamID, actorID uuid.UUID) (*inbound.AssignmentOutput, error) {
	out, err := d.release(ctx, teamID, actorID, d.lifecycle.TransitionToResolved, true)
	if err != nil {
		return nil, err
	}

	d.statusChanged(out, model.IssueStatusAssigned)
	d.logger.Info("issue resolved",
		zap.String("team_id", teamID.String()),
		zap.String("issue_id", out.Issue.ID.String()),
		zap.Int("members_rewarded", len(out.Team.Members)),
	)

	return out, nil
}

type transitionFunc func(ctx context.Context, id uuid.UUID) (*model.Issue, error)

// release moves the team's current issue out of Assigned and clears the link.
func (d *Domain) release(ctx context.Context, teamID, actorID uuid.UUID, transition transitionFunc, reward bool) (*inbound.AssignmentOutput, error) {
	var out *inbound.AssignmentOutput

	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := d.lockAsLeader(txCtx, teamID, actorID)
		if err != nil {
			return err
		}
		if !t.HasIssue() {
			return ErrNoCurrentIssue
		}

		issue, err := transition(txCtx, *t.IssueID)
		if err != nil {
			return err
		}
		if err := d.teamDB.SetIssue(txCtx, teamID, nil); err != nil {
			return err
		}

		if reward && d.cfg.ResolveReputation != 0 && len(t.Members) > 0 {
			if err := d.userDB.IncrementReputation(txCtx, t.MemberIDs(), d.cfg.ResolveReputation); err != nil {
				return err
			}
		}

		t.IssueID = nil
		out = &inbound.AssignmentOutput{Team: t, Issue: issue}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (d *Domain) lockAsLeader(ctx context.Context, teamID, actorID uuid.UUID) (*model.Team, error) {
	t, err := d.teamDB.FindByIDForUpdate(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !t.IsLeader(actorID) {
		return nil, team.ErrNotLeader
	}
	return t, nil
}

func (d *Domain) statusChanged(out *inbound.AssignmentOutput, from model.IssueStatus) {
	d.events.Publish(events.NewIssueStatusChangedEvent(
		out.Issue.ID, out.Team.ID, string(from), string(out.Issue.Status)))
}

// Compile-time interface check.
var _ inbound.AssignmentDomain = (*Domain)(nil)
