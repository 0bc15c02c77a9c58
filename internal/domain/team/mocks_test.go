package team

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/model"
)

type mockTeamDB struct {
	mock.Mock
}

func (m *mockTeamDB) Create(ctx context.Context, team *model.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *mockTeamDB) FindByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *mockTeamDB) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *mockTeamDB) FindByName(ctx context.Context, name string) (*model.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *mockTeamDB) FindByLeader(ctx context.Context, leaderID uuid.UUID) (*model.Team, error) {
	args := m.Called(ctx, leaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *mockTeamDB) FindByIssue(ctx context.Context, issueID uuid.UUID) (*model.Team, error) {
	args := m.Called(ctx, issueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *mockTeamDB) List(ctx context.Context) ([]*model.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Team), args.Error(1)
}

func (m *mockTeamDB) SetIssue(ctx context.Context, teamID uuid.UUID, issueID *uuid.UUID) error {
	args := m.Called(ctx, teamID, issueID)
	return args.Error(0)
}

func (m *mockTeamDB) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMemberDB struct {
	mock.Mock
}

func (m *mockMemberDB) Add(ctx context.Context, member *model.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockMemberDB) FindByUser(ctx context.Context, userID uuid.UUID) (*model.TeamMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *mockMemberDB) FindByTeam(ctx context.Context, teamID uuid.UUID) ([]*model.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TeamMember), args.Error(1)
}

func (m *mockMemberDB) Remove(ctx context.Context, teamID, userID uuid.UUID) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

type mockUserDB struct {
	mock.Mock
}

func (m *mockUserDB) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserDB) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserDB) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserDB) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserDB) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *mockUserDB) IncrementReputation(ctx context.Context, ids []uuid.UUID, delta int) error {
	args := m.Called(ctx, ids, delta)
	return args.Error(0)
}

type mockInvitationDB struct {
	mock.Mock
}

func (m *mockInvitationDB) Create(ctx context.Context, invitation *model.Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

func (m *mockInvitationDB) FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

func (m *mockInvitationDB) FindPending(ctx context.Context, teamID, recipientID uuid.UUID) (*model.Invitation, error) {
	args := m.Called(ctx, teamID, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

func (m *mockInvitationDB) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*model.Invitation, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Invitation), args.Error(1)
}

func (m *mockInvitationDB) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockInvitationDB) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

type mockLifecycle struct {
	mock.Mock
}

func (m *mockLifecycle) TransitionToAssigned(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Issue), args.Error(1)
}

func (m *mockLifecycle) TransitionToReported(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Issue), args.Error(1)
}

func (m *mockLifecycle) TransitionToResolved(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Issue), args.Error(1)
}

type mockTransaction struct{}

func (mockTransaction) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	types []string
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.types = append(p.types, event.EventType())
}
