package invitation

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
	return m.Called(ctx, team).Error(0)
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
	return m.Called(ctx, teamID, issueID).Error(0)
}

func (m *mockTeamDB) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockInvitationDB struct {
	mock.Mock
}

func (m *mockInvitationDB) Create(ctx context.Context, invitation *model.Invitation) error {
	return m.Called(ctx, invitation).Error(0)
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
	return m.Called(ctx, id).Error(0)
}

func (m *mockInvitationDB) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return m.Called(ctx, teamID).Error(0)
}

type mockMembership struct {
	mock.Mock
}

func (m *mockMembership) CheckEligible(ctx context.Context, teamID, userID uuid.UUID) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

func (m *mockMembership) Join(ctx context.Context, teamID, userID uuid.UUID) (*model.Team, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

// rollbackTransaction reports whether the last transaction committed.
type rollbackTransaction struct {
	committed bool
}

func (r *rollbackTransaction) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	r.committed = err == nil
	return err
}

type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.published = append(p.published, event)
}
