package issue

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/infra/task"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/inbound"
	"github.com/civicteams/server/internal/port/outbound"
)

const maxPageSize = 100

// Domain implements the issue lifecycle.
//
// It is a pure state machine guard: Reported ⇄ Assigned → Resolved. Callers
// are responsible for authorization, and for publishing status-change events
// once their own transaction has committed.
type Domain struct {
	issueDB    outbound.IssueDatabasePort
	txPort     outbound.TransactionPort
	classifier outbound.ClassifierPort
	events     outbound.EventPublisherPort
	cfg        *Config
	logger     *zap.Logger
	background *task.Runner
}

// NewDomain creates a new issue domain. classifier may be nil, in which case
// issues keep their default labels.
func NewDomain(
	issueDB outbound.IssueDatabasePort,
	txPort outbound.TransactionPort,
	classifier outbound.ClassifierPort,
	eventPublisher outbound.EventPublisherPort,
	cfg *Config,
	logger *zap.Logger,
) *Domain {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	_ = cfg.Validate()

	return &Domain{
		issueDB:    issueDB,
		txPort:     txPort,
		classifier: classifier,
		events:     eventPublisher,
		cfg:        cfg,
		logger:     logger,
		background: task.NewRunner(logger, &task.Config{MaxConcurrent: cfg.ClassifyConcurrency}),
	}
}

// ========== Reporting ==========

// Report stores a new issue in the Reported state with pending labels and
// returns it immediately. Classification happens in the background.
func (d *Domain) Report(ctx context.Context, reporterID *uuid.UUID, in *inbound.ReportIssueInput) (*model.Issue, error) {
	issue, err := d.newIssue(reporterID, in)
	if err != nil {
		return nil, err
	}

	if err := d.issueDB.Create(ctx, issue); err != nil {
		return nil, err
	}

	d.events.Publish(events.NewIssueReportedEvent(issue.ID, issue.ReporterID))

	fields := []zap.Field{zap.String("issue_id", issue.ID.String())}
	if reporterID != nil {
		fields = append(fields, zap.String("reporter_id", reporterID.String()))
	}
	d.logger.Info("issue reported", fields...)

	d.classifyAsync(issue.ID, issue.Description)

	return issue, nil
}

func (d *Domain) newIssue(reporterID *uuid.UUID, in *inbound.ReportIssueInput) (*model.Issue, error) {
	if in == nil {
		return nil, ErrDescriptionRequired
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if utf8.RuneCountInString(description) > d.cfg.MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	title := strings.TrimSpace(in.Title)
	if utf8.RuneCountInString(title) > d.cfg.MaxTitleLength {
		return nil, ErrTitleTooLong
	}

	if in.Location.IsEmpty() {
		return nil, ErrLocationRequired
	}
	location, ok := in.Location.Point()
	if !ok || !location.IsValid() {
		return nil, ErrInvalidLocation
	}

	if len(in.Images) > d.cfg.MaxImages {
		return nil, ErrTooManyImages
	}
	images := make([]string, 0, len(in.Images))
	for _, ref := range in.Images {
		ref = strings.TrimSpace(ref)
		if ref == "" || strings.Contains(ref, "..") {
			return nil, ErrInvalidImageRef
		}
		images = append(images, ref)
	}

	now := time.Now()
	return &model.Issue{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Location:    location,
		Status:      model.IssueStatusReported,
		ReporterID:  reporterID,
		Category:    model.CategoryPending,
		Severity:    model.SeverityPending,
		ImageRefs:   images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ========== Classification ==========

// classifyAsync requests labels for an issue without blocking the caller.
// Classifier failures leave the pending labels in place.
func (d *Domain) classifyAsync(id uuid.UUID, description string) {
	if d.classifier == nil {
		return
	}

	d.background.Submit("classify:"+id.String(), func(base context.Context) error {
		ctx, cancel := context.WithTimeout(base, d.cfg.ClassifyTimeout)
		defer cancel()

		result, err := d.classifier.Classify(ctx, description)
		if err != nil {
			d.logger.Warn("issue classification unavailable, keeping defaults",
				zap.String("issue_id", id.String()),
				zap.Error(err),
			)
			return nil
		}

		// The store write gets its own budget so a slow classifier cannot starve it.
		writeCtx, writeCancel := context.WithTimeout(base, d.cfg.ClassifyTimeout)
		defer writeCancel()

		if _, err := d.ApplyClassification(writeCtx, id, result); err != nil {
			d.logger.Error("failed to store issue classification",
				zap.String("issue_id", id.String()),
				zap.Error(err),
			)
		}
		return nil
	})
}

// ApplyClassification stores classifier labels on an issue that has not been
// classified yet. It reports whether the labels were applied.
func (d *Domain) ApplyClassification(ctx context.Context, id uuid.UUID, c *outbound.Classification) (bool, error) {
	if c == nil {
		return false, nil
	}

	category := strings.TrimSpace(c.Category)
	if category == "" {
		category = model.CategoryPending
	}
	severity := model.ParseSeverity(string(c.Severity))

	applied, err := d.issueDB.UpdateClassification(ctx, id, category, severity)
	if err != nil {
		return false, err
	}
	if !applied {
		return false, nil
	}

	d.events.Publish(events.NewIssueClassifiedEvent(id, category, string(severity)))
	d.logger.Info("issue classified",
		zap.String("issue_id", id.String()),
		zap.String("category", category),
		zap.String("severity", string(severity)),
	)

	return true, nil
}

// Wait blocks until background classifications have finished.
func (d *Domain) Wait() {
	d.background.Wait()
}

// Stop drops queued classifications and waits for running ones.
func (d *Domain) Stop() {
	d.background.Stop()
}

// ========== Queries ==========

// GetIssue returns an issue by ID.
func (d *Domain) GetIssue(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	return d.issueDB.FindByID(ctx, id)
}

// ListIssues lists issues newest first.
func (d *Domain) ListIssues(ctx context.Context, filter *model.IssueFilter) ([]*model.Issue, int64, error) {
	f := model.IssueFilter{}
	if filter != nil {
		f = *filter
	}
	if f.Status != nil && !f.Status.IsValid() {
		return nil, 0, ErrInvalidStatus
	}
	if f.Limit <= 0 {
		f.Limit = d.cfg.DefaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return d.issueDB.List(ctx, &f)
}

// ========== Transitions ==========

// TransitionToAssigned moves a Reported issue to Assigned.
func (d *Domain) TransitionToAssigned(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	return d.transition(ctx, id, model.IssueStatusAssigned)
}

// TransitionToReported moves an Assigned issue back to Reported.
func (d *Domain) TransitionToReported(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	return d.transition(ctx, id, model.IssueStatusReported)
}

// TransitionToResolved moves an Assigned issue to the terminal Resolved state.
func (d *Domain) TransitionToResolved(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	return d.transition(ctx, id, model.IssueStatusResolved)
}

// CanTransition reports whether the lifecycle has an edge from one status to another.
func CanTransition(from, to model.IssueStatus) bool {
	switch to {
	case model.IssueStatusAssigned:
		return from == model.IssueStatusReported
	case model.IssueStatusReported, model.IssueStatusResolved:
		return from == model.IssueStatusAssigned
	default:
		return false
	}
}

func (d *Domain) transition(ctx context.Context, id uuid.UUID, to model.IssueStatus) (*model.Issue, error) {
	var issue *model.Issue

	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		current, err := d.issueDB.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if current.Status.IsTerminal() {
			return ErrIssueResolved
		}
		if !CanTransition(current.Status, to) {
			return ErrInvalidTransition
		}

		if err := d.issueDB.UpdateStatus(txCtx, id, to); err != nil {
			return err
		}

		current.Status = to
		current.UpdatedAt = time.Now()
		issue = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.logger.Debug("issue status changed",
		zap.String("issue_id", id.String()),
		zap.String("status", string(to)),
	)

	return issue, nil
}

// Compile-time interface checks.
var (
	_ inbound.IssueDomain         = (*Domain)(nil)
	_ outbound.IssueLifecyclePort = (*Domain)(nil)
)
