package assignment

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

type mockIssueDB struct {
	mock.Mock
}

func (m *mockIssueDB) Create(ctx context.Context, issue *model.Issue) error {
	return m.Called(ctx, issue).Error(0)
}

func (m *mockIssueDB) FindByID(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Issue), args.Error(1)
}

func (m *mockIssueDB) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Issue), args.Error(1)
}

func (m *mockIssueDB) List(ctx context.Context, filter *model.IssueFilter) ([]*model.Issue, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.Issue), args.Get(1).(int64), args.Error(2)
}

func (m *mockIssueDB) UpdateStatus(ctx context.Context, id uuid.UUID, status model.IssueStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockIssueDB) UpdateClassification(ctx context.Context, id uuid.UUID, category string, severity model.Severity) (bool, error) {
	args := m.Called(ctx, id, category, severity)
	return args.Bool(0), args.Error(1)
}

type mockUserDB struct {
	mock.Mock
}

func (m *mockUserDB) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
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
	return m.Called(ctx, ids, delta).Error(0)
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
	published []events.Event
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.published = append(p.published, event)
}
