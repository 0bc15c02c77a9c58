package team

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/inbound"
	"github.com/civicteams/server/internal/port/outbound"
)

// Domain implements the team registry.
//
// Every operation that changes leadership or membership runs in one
// transaction that locks the team row first and the affected user row
// second, and passes the candidate through ensureEligible.
type Domain struct {
	teamDB       outbound.TeamDatabasePort
	memberDB     outbound.TeamMemberDatabasePort
	userDB       outbound.UserDatabasePort
	invitationDB outbound.InvitationDatabasePort
	lifecycle    outbound.IssueLifecyclePort
	txPort       outbound.TransactionPort
	events       outbound.EventPublisherPort
	cfg          *Config
	logger       *zap.Logger
}

// NewDomain creates a new team domain.
func NewDomain(
	teamDB outbound.TeamDatabasePort,
	memberDB outbound.TeamMemberDatabasePort,
	userDB outbound.UserDatabasePort,
	invitationDB outbound.InvitationDatabasePort,
	lifecycle outbound.IssueLifecyclePort,
	txPort outbound.TransactionPort,
	eventPublisher outbound.EventPublisherPort,
	cfg *Config,
	logger *zap.Logger,
) *Domain {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	_ = cfg.Validate()

	return &Domain{
		teamDB:       teamDB,
		memberDB:     memberDB,
		userDB:       userDB,
		invitationDB: invitationDB,
		lifecycle:    lifecycle,
		txPort:       txPort,
		events:       eventPublisher,
		cfg:          cfg,
		logger:       logger,
	}
}

// ========== Team Operations ==========

// CreateTeam creates a team led by the founder, who becomes its sole member.
func (d *Domain) CreateTeam(ctx context.Context, founderID uuid.UUID, in *inbound.CreateTeamInput) (*model.Team, error) {
	if in == nil {
		return nil, ErrInvalidTeamName
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > d.cfg.MaxNameLength {
		return nil, ErrInvalidTeamName
	}

	var team *model.Team

	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		founder, err := d.userDB.FindByIDForUpdate(txCtx, founderID)
		if err != nil {
			return err
		}
		if founder.IsBusiness() {
			return ErrBusinessCannotLead
		}

		existing, err := d.teamDB.FindByName(txCtx, name)
		if err != nil && !errors.Is(err, ErrTeamNotFound) {
			return err
		}
		if existing != nil {
			return ErrTeamNameTaken
		}

		if err := d.ensureEligible(txCtx, founder, uuid.Nil); err != nil {
			return err
		}

		now := time.Now()
		team = &model.Team{
			ID:        uuid.New(),
			Name:      name,
			LeaderID:  founderID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := d.teamDB.Create(txCtx, team); err != nil {
			return err
		}

		member := model.TeamMember{TeamID: team.ID, UserID: founderID, JoinedAt: now}
		if err := d.memberDB.Add(txCtx, &member); err != nil {
			return err
		}
		team.Members = []model.TeamMember{member}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.events.Publish(events.NewTeamEvent(events.TeamCreatedType, team.ID, founderID))
	d.logger.Info("team created",
		zap.String("team_id", team.ID.String()),
		zap.String("leader_id", founderID.String()),
		zap.String("name", team.Name),
	)

	return team, nil
}

// GetTeam returns a team with its members.
func (d *Domain) GetTeam(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	return d.teamDB.FindByID(ctx, id)
}

// ListTeams returns all teams with their members.
func (d *Domain) ListTeams(ctx context.Context) ([]*model.Team, error) {
	return d.teamDB.List(ctx)
}

// GetTeamOfUser returns the team a user belongs to.
func (d *Domain) GetTeamOfUser(ctx context.Context, userID uuid.UUID) (*model.Team, error) {
	m, err := d.memberDB.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return nil, ErrUserHasNoTeam
		}
		return nil, err
	}
	return d.teamDB.FindByID(ctx, m.TeamID)
}

// Disband deletes a team. Its current issue, if any, goes back to Reported in
// the same transaction, and pending invitations to the team are dropped.
func (d *Domain) Disband(ctx context.Context, teamID, actorID uuid.UUID) (*model.Issue, error) {
	var (
		team     *model.Team
		released *model.Issue
	)

	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		team, err = d.teamDB.FindByIDForUpdate(txCtx, teamID)
		if err != nil {
			return err
		}
		if !team.IsLeader(actorID) {
			return ErrNotLeader
		}

		if team.IssueID != nil {
			released, err = d.lifecycle.TransitionToReported(txCtx, *team.IssueID)
			if err != nil {
				return err
			}
			if err := d.teamDB.SetIssue(txCtx, teamID, nil); err != nil {
				return err
			}
		}

		if err := d.invitationDB.DeleteByTeam(txCtx, teamID); err != nil {
			return err
		}
		return d.teamDB.Delete(txCtx, teamID)
	})
	if err != nil {
		return nil, err
	}

	if released != nil {
		d.events.Publish(events.NewIssueStatusChangedEvent(
			released.ID, teamID, string(model.IssueStatusAssigned), string(released.Status)))
	}
	d.events.Publish(events.NewTeamEvent(events.TeamDisbandedType, teamID, actorID))

	fields := []zap.Field{zap.String("team_id", teamID.String())}
	if released != nil {
		fields = append(fields, zap.String("released_issue_id", released.ID.String()))
	}
	d.logger.Info("team disbanded", fields...)

	return released, nil
}

// ========== Member Operations ==========

// AddMember adds a user to the team. Only the leader may add members.
func (d *Domain) AddMember(ctx context.Context, teamID, userID, actorID uuid.UUID) (*model.Team, error) {
	var team *model.Team

	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		locked, err := d.teamDB.FindByIDForUpdate(txCtx, teamID)
		if err != nil {
			return err
		}
		if !locked.IsLeader(actorID) {
			return ErrNotLeader
		}
		team, err = d.join(txCtx, locked, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	d.memberJoined(team.ID, userID)
	return team, nil
}

// Join adds a user to the team after re-checking eligibility. It carries no
// authority check and is used once the leader has already consented, as with
// an accepted invitation. Join publishes nothing: it normally runs inside the
// caller's transaction, and the caller announces the new member after commit.
func (d *Domain) Join(ctx context.Context, teamID, userID uuid.UUID) (*model.Team, error) {
	var team *model.Team

	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		locked, err := d.teamDB.FindByIDForUpdate(txCtx, teamID)
		if err != nil {
			return err
		}
		team, err = d.join(txCtx, locked, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// CheckEligible reports whether a user could join the team right now.
func (d *Domain) CheckEligible(ctx context.Context, teamID, userID uuid.UUID) error {
	user, err := d.userDB.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	return d.ensureEligible(ctx, user, teamID)
}

// RemoveMember removes a member from the team. Only the leader may remove
// members, and the leader cannot be removed.
func (d *Domain) RemoveMember(ctx context.Context, teamID, userID, actorID uuid.UUID) (*model.Team, error) {
	var team *model.Team

	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		team, err = d.teamDB.FindByIDForUpdate(txCtx, teamID)
		if err != nil {
			return err
		}
		if !team.IsLeader(actorID) {
			return ErrNotLeader
		}
		if team.IsLeader(userID) {
			return ErrCannotRemoveLeader
		}
		return d.removeMember(txCtx, team, userID)
	})
	if err != nil {
		return nil, err
	}

	d.memberLeft(teamID, userID, "removed")
	return team, nil
}

// LeaveTeam removes the acting user from the team. The leader must disband instead.
func (d *Domain) LeaveTeam(ctx context.Context, teamID, actorID uuid.UUID) error {
	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		team, err := d.teamDB.FindByIDForUpdate(txCtx, teamID)
		if err != nil {
			return err
		}
		if team.IsLeader(actorID) {
			return ErrLeaderCannotLeave
		}
		return d.removeMember(txCtx, team, actorID)
	})
	if err != nil {
		return err
	}

	d.memberLeft(teamID, actorID, "left")
	return nil
}

// ========== Invariants ==========

// ensureEligible is the single check guarding leadership and membership:
// business accounts never take part, and a user belongs to at most one team
// and leads at most one. teamID is the team being joined, or uuid.Nil when
// founding a new one.
func (d *Domain) ensureEligible(ctx context.Context, user *model.User, teamID uuid.UUID) error {
	if user.IsBusiness() {
		return ErrBusinessUser
	}

	membership, err := d.memberDB.FindByUser(ctx, user.ID)
	if err != nil && !errors.Is(err, ErrMemberNotFound) {
		return err
	}
	if membership != nil {
		if membership.TeamID == teamID {
			return ErrAlreadyMember
		}
		return ErrMemberOfAnotherTeam
	}

	led, err := d.teamDB.FindByLeader(ctx, user.ID)
	if err != nil && !errors.Is(err, ErrTeamNotFound) {
		return err
	}
	if led != nil {
		return ErrAlreadyLeader
	}

	return nil
}

// join adds a user to an already locked team.
func (d *Domain) join(ctx context.Context, team *model.Team, userID uuid.UUID) (*model.Team, error) {
	user, err := d.userDB.FindByIDForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := d.ensureEligible(ctx, user, team.ID); err != nil {
		return nil, err
	}

	now := time.Now()
	member := model.TeamMember{TeamID: team.ID, UserID: userID, JoinedAt: now}
	if err := d.memberDB.Add(ctx, &member); err != nil {
		return nil, err
	}

	team.Members = append(team.Members, member)
	team.UpdatedAt = now
	return team, nil
}

// removeMember removes a user from an already locked team.
func (d *Domain) removeMember(ctx context.Context, team *model.Team, userID uuid.UUID) error {
	if !team.HasMember(userID) {
		return ErrMemberNotFound
	}
	if err := d.memberDB.Remove(ctx, team.ID, userID); err != nil {
		return err
	}

	kept := team.Members[:0]
	for _, m := range team.Members {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	team.Members = kept
	return nil
}

func (d *Domain) memberJoined(teamID, userID uuid.UUID) {
	d.events.Publish(events.NewTeamEvent(events.MemberJoinedType, teamID, userID))
	d.logger.Info("team member added",
		zap.String("team_id", teamID.String()),
		zap.String("user_id", userID.String()),
	)
}

func (d *Domain) memberLeft(teamID, userID uuid.UUID, reason string) {
	d.events.Publish(events.NewTeamEvent(events.MemberLeftType, teamID, userID))
	d.logger.Info("team member removed",
		zap.String("team_id", teamID.String()),
		zap.String("user_id", userID.String()),
		zap.String("reason", reason),
	)
}

// Compile-time interface checks.
var (
	_ inbound.TeamDomain          = (*Domain)(nil)
	_ outbound.TeamMembershipPort = (*Domain)(nil)
)
