package issue

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/inbound"
	"github.com/civicteams/server/internal/port/outbound"
	apperrors "github.com/civicteams/server/internal/utils/errors"
)

// Mock implementations

type mockIssueDB struct {
	mock.Mock
}

func (m *mockIssueDB) Create(ctx context.Context, issue *model.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
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
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockIssueDB) UpdateClassification(ctx context.Context, id uuid.UUID, category string, severity model.Severity) (bool, error) {
	args := m.Called(ctx, id, category, severity)
	return args.Bool(0), args.Error(1)
}

type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) Classify(ctx context.Context, description string) (*outbound.Classification, error) {
	args := m.Called(ctx, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.Classification), args.Error(1)
}

// blockingClassifier never answers before its context expires.
type blockingClassifier struct{}

func (blockingClassifier) Classify(ctx context.Context, _ string) (*outbound.Classification, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type mockTransaction struct{}

func (mockTransaction) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

// Test helper

func setupDomain(classifier outbound.ClassifierPort, cfg *Config) (*Domain, *mockIssueDB, *recordingPublisher) {
	issueDB := new(mockIssueDB)
	pub := &recordingPublisher{}
	d := NewDomain(issueDB, mockTransaction{}, classifier, pub, cfg, zap.NewNop())
	return d, issueDB, pub
}

func validInput() *inbound.ReportIssueInput {
	return &inbound.ReportIssueInput{
		Title:       "Pothole",
		Description: "Deep pothole on Main St",
		Location:    inbound.NewLocationInput(77.59, 12.97),
	}
}

func TestDomain_Report(t *testing.T) {
	ctx := context.Background()

	t.Run("success_with_pending_defaults", func(t *testing.T) {
		d, issueDB, pub := setupDomain(nil, nil)
		reporter := uuid.New()

		issueDB.On("Create", ctx, mock.AnythingOfType("*model.Issue")).Return(nil)

		issue, err := d.Report(ctx, &reporter, validInput())

		require.NoError(t, err)
		assert.Equal(t, model.IssueStatusReported, issue.Status)
		assert.Equal(t, model.CategoryPending, issue.Category)
		assert.Equal(t, model.SeverityPending, issue.Severity)
		assert.False(t, issue.Classified)
		assert.Equal(t, &reporter, issue.ReporterID)
		assert.Equal(t, []string{events.IssueReportedType}, pub.types())
		issueDB.AssertExpectations(t)
	})

	t.Run("anonymous_reporter", func(t *testing.T) {
		d, issueDB, _ := setupDomain(nil, nil)
		issueDB.On("Create", ctx, mock.AnythingOfType("*model.Issue")).Return(nil)

		issue, err := d.Report(ctx, nil, validInput())

		require.NoError(t, err)
		assert.Nil(t, issue.ReporterID)
	})

	t.Run("validation", func(t *testing.T) {
		d, issueDB, _ := setupDomain(nil, nil)
		long := make([]byte, 2001)
		for i := range long {
			long[i] = 'a'
		}

		tests := []struct {
			name   string
			mutate func(in *inbound.ReportIssueInput)
			want   error
		}{
			{"missing_description", func(in *inbound.ReportIssueInput) { in.Description = "  " }, ErrDescriptionRequired},
			{"long_description", func(in *inbound.ReportIssueInput) { in.Description = string(long) }, ErrDescriptionTooLong},
			{"missing_location", func(in *inbound.ReportIssueInput) { in.Location = nil }, ErrLocationRequired},
			{"empty_location", func(in *inbound.ReportIssueInput) { in.Location = &inbound.LocationInput{} }, ErrLocationRequired},
			{"missing_longitude", func(in *inbound.ReportIssueInput) { in.Location.Longitude = nil }, ErrInvalidLocation},
			{"missing_latitude", func(in *inbound.ReportIssueInput) { in.Location.Latitude = nil }, ErrInvalidLocation},
			{"nan_longitude", func(in *inbound.ReportIssueInput) { in.Location = inbound.NewLocationInput(math.NaN(), 12.97) }, ErrInvalidLocation},
			{"infinite_latitude", func(in *inbound.ReportIssueInput) { in.Location = inbound.NewLocationInput(77.59, math.Inf(1)) }, ErrInvalidLocation},
			{"latitude_out_of_range", func(in *inbound.ReportIssueInput) { in.Location = inbound.NewLocationInput(77.59, 91) }, ErrInvalidLocation},
			{"too_many_images", func(in *inbound.ReportIssueInput) { in.Images = []string{"a", "b", "c", "d", "e", "f"} }, ErrTooManyImages},
			{"blank_image", func(in *inbound.ReportIssueInput) { in.Images = []string{" "} }, ErrInvalidImageRef},
			{"traversal_image", func(in *inbound.ReportIssueInput) { in.Images = []string{"../secret"} }, ErrInvalidImageRef},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := validInput()
				tt.mutate(in)
				_, err := d.Report(ctx, nil, in)
				assert.Equal(t, tt.want, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
			})
		}

		_, err := d.Report(ctx, nil, nil)
		assert.Equal(t, ErrDescriptionRequired, err)
		issueDB.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store_failure", func(t *testing.T) {
		classifier := new(mockClassifier)
		d, issueDB, pub := setupDomain(classifier, nil)
		issueDB.On("Create", ctx, mock.AnythingOfType("*model.Issue")).Return(errors.New("db down"))

		_, err := d.Report(ctx, nil, validInput())

		assert.EqualError(t, err, "db down")
		assert.Empty(t, pub.types())
		d.Wait()
		classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
	})
}

func TestDomain_Classification(t *testing.T) {
	ctx := context.Background()

	t.Run("labels_applied_in_background", func(t *testing.T) {
		classifier := new(mockClassifier)
		d, issueDB, pub := setupDomain(classifier, nil)

		issueDB.On("Create", ctx, mock.AnythingOfType("*model.Issue")).Return(nil)
		classifier.On("Classify", mock.Anything, "Deep pothole on Main St").
			Return(&outbound.Classification{Category: "Road Damage", Severity: model.SeverityHigh}, nil)

		issueDB.On("UpdateClassification", mock.Anything, mock.AnythingOfType("uuid.UUID"), "Road Damage", model.SeverityHigh).
			Return(true, nil)

		issue, err := d.Report(ctx, nil, validInput())
		require.NoError(t, err)
		d.Wait()

		classifier.AssertExpectations(t)
		issueDB.AssertCalled(t, "UpdateClassification", mock.Anything, issue.ID, "Road Damage", model.SeverityHigh)
		assert.Equal(t, []string{events.IssueReportedType, events.IssueClassifiedType}, pub.types())
	})

	t.Run("classifier_unavailable_keeps_defaults", func(t *testing.T) {
		classifier := new(mockClassifier)
		d, issueDB, _ := setupDomain(classifier, nil)

		issueDB.On("Create", ctx, mock.AnythingOfType("*model.Issue")).Return(nil)
		classifier.On("Classify", mock.Anything, mock.Anything).Return(nil, apperrors.ErrUpstreamUnavailable)

		issue, err := d.Report(ctx, nil, validInput())
		require.NoError(t, err)
		d.Wait()

		assert.Equal(t, model.CategoryPending, issue.Category)
		issueDB.AssertNotCalled(t, "UpdateClassification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("slow_classifier_does_not_block_report", func(t *testing.T) {
		d, issueDB, _ := setupDomain(blockingClassifier{}, &Config{ClassifyTimeout: 50 * time.Millisecond})
		issueDB.On("Create", ctx, mock.AnythingOfType("*model.Issue")).Return(nil)

		start := time.Now()
		_, err := d.Report(ctx, nil, validInput())
		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)

		d.Wait()
		issueDB.AssertNotCalled(t, "UpdateClassification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown_severity_becomes_pending", func(t *testing.T) {
		d, issueDB, _ := setupDomain(nil, nil)
		id := uuid.New()
		issueDB.On("UpdateClassification", ctx, id, "Lighting", model.SeverityPending).Return(true, nil)

		applied, err := d.ApplyClassification(ctx, id, &outbound.Classification{Category: " Lighting ", Severity: "Urgent"})

		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("already_classified_is_ignored", func(t *testing.T) {
		d, issueDB, pub := setupDomain(nil, nil)
		id := uuid.New()
		issueDB.On("UpdateClassification", ctx, id, model.CategoryPending, model.SeverityLow).Return(false, nil)

		applied, err := d.ApplyClassification(ctx, id, &outbound.Classification{Severity: model.SeverityLow})

		require.NoError(t, err)
		assert.False(t, applied)
		assert.Empty(t, pub.types())
	})
}

func TestDomain_Transitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		from    model.IssueStatus
		to      model.IssueStatus
		wantErr error
	}{
		{"reported_to_assigned", model.IssueStatusReported, model.IssueStatusAssigned, nil},
		{"assigned_to_reported", model.IssueStatusAssigned, model.IssueStatusReported, nil},
		{"assigned_to_resolved", model.IssueStatusAssigned, model.IssueStatusResolved, nil},
		{"assigned_twice", model.IssueStatusAssigned, model.IssueStatusAssigned, ErrInvalidTransition},
		{"reported_to_reported", model.IssueStatusReported, model.IssueStatusReported, ErrInvalidTransition},
		{"reported_to_resolved", model.IssueStatusReported, model.IssueStatusResolved, ErrInvalidTransition},
		{"resolved_to_assigned", model.IssueStatusResolved, model.IssueStatusAssigned, ErrIssueResolved},
		{"resolved_to_reported", model.IssueStatusResolved, model.IssueStatusReported, ErrIssueResolved},
		{"resolved_to_resolved", model.IssueStatusResolved, model.IssueStatusResolved, ErrIssueResolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, issueDB, _ := setupDomain(nil, nil)
			id := uuid.New()
			issueDB.On("FindByIDForUpdate", ctx, id).Return(&model.Issue{ID: id, Status: tt.from}, nil)
			if tt.wantErr == nil {
				issueDB.On("UpdateStatus", ctx, id, tt.to).Return(nil)
			}

			var (
				issue *model.Issue
				err   error
			)
			switch tt.to {
			case model.IssueStatusAssigned:
				issue, err = d.TransitionToAssigned(ctx, id)
			case model.IssueStatusReported:
				issue, err = d.TransitionToReported(ctx, id)
			case model.IssueStatusResolved:
				issue, err = d.TransitionToResolved(ctx, id)
			}

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				issueDB.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, issue.Status)
			issueDB.AssertExpectations(t)
		})
	}

	t.Run("terminal_error_kind", func(t *testing.T) {
		assert.True(t, errors.Is(ErrIssueResolved, apperrors.ErrTerminalState))
		assert.True(t, errors.Is(ErrInvalidTransition, apperrors.ErrInvalidState))
	})

	t.Run("missing_issue", func(t *testing.T) {
		d, issueDB, _ := setupDomain(nil, nil)
		id := uuid.New()
		issueDB.On("FindByIDForUpdate", ctx, id).Return(nil, ErrIssueNotFound)

		_, err := d.TransitionToAssigned(ctx, id)
		assert.Equal(t, ErrIssueNotFound, err)
	})
}

func TestDomain_ListIssues(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps_limit", func(t *testing.T) {
		d, issueDB, _ := setupDomain(nil, nil)
		issueDB.On("List", ctx, mock.MatchedBy(func(f *model.IssueFilter) bool {
			return f.Limit == 100 && f.Offset == 0
		})).Return([]*model.Issue{}, int64(0), nil)

		_, _, err := d.ListIssues(ctx, &model.IssueFilter{Limit: 1000, Offset: -5})
		require.NoError(t, err)
		issueDB.AssertExpectations(t)
	})

	t.Run("default_limit", func(t *testing.T) {
		d, issueDB, _ := setupDomain(nil, nil)
		issueDB.On("List", ctx, mock.MatchedBy(func(f *model.IssueFilter) bool {
			return f.Limit == 20
		})).Return([]*model.Issue{}, int64(0), nil)

		_, _, err := d.ListIssues(ctx, nil)
		require.NoError(t, err)
	})

	t.Run("invalid_status", func(t *testing.T) {
		d, _, _ := setupDomain(nil, nil)
		status := model.IssueStatus("Closed")

		_, _, err := d.ListIssues(ctx, &model.IssueFilter{Status: &status})
		assert.Equal(t, ErrInvalidStatus, err)
	})
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(model.IssueStatusReported, model.IssueStatusAssigned))
	assert.True(t, CanTransition(model.IssueStatusAssigned, model.IssueStatusReported))
	assert.True(t, CanTransition(model.IssueStatusAssigned, model.IssueStatusResolved))
	assert.False(t, CanTransition(model.IssueStatusResolved, model.IssueStatusReported))
	assert.False(t, CanTransition(model.IssueStatusReported, "Closed"))
}
