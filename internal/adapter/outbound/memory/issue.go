package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/domain/issue"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// copyIssue detaches the image list so callers cannot alter stored data.
func copyIssue(i model.Issue) *model.Issue {
	i.ImageRefs = slices.Clone(i.ImageRefs)
	if i.ReporterID != nil {
		id := *i.ReporterID
		i.ReporterID = &id
	}
	return &i
}

// IssueAdapter implements outbound.IssueDatabasePort.
type IssueAdapter struct {
	s *Store
}

// NewIssueAdapter creates a new issue adapter backed by the store.
func NewIssueAdapter(s *Store) *IssueAdapter {
	return &IssueAdapter{s: s}
}

func (a *IssueAdapter) Create(ctx context.Context, i *model.Issue) error {
	return a.s.do(ctx, func(st *state) error {
		st.issues[i.ID] = *copyIssue(*i)
		return nil
	})
}

func (a *IssueAdapter) FindByID(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	var found *model.Issue
	err := a.s.do(ctx, func(st *state) error {
		i, ok := st.issues[id]
		if !ok {
			return issue.ErrIssueNotFound
		}
		found = copyIssue(i)
		return nil
	})
	return found, err
}

// FindByIDForUpdate is FindByID: transactions are already serialized.
func (a *IssueAdapter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	return a.FindByID(ctx, id)
}

func (a *IssueAdapter) List(ctx context.Context, filter *model.IssueFilter) ([]*model.Issue, int64, error) {
	var matched []*model.Issue
	_ = a.s.do(ctx, func(st *state) error {
		for _, i := range st.issues {
			if filter.Status != nil && i.Status != *filter.Status {
				continue
			}
			if filter.ReporterID != nil && (i.ReporterID == nil || *i.ReporterID != *filter.ReporterID) {
				continue
			}
			matched = append(matched, copyIssue(i))
		}
		return nil
	})

	slices.SortFunc(matched, func(x, y *model.Issue) int {
		if c := y.CreatedAt.Compare(x.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(x.ID.String(), y.ID.String())
	})

	total := int64(len(matched))
	start := min(filter.Offset, len(matched))
	end := len(matched)
	if filter.Limit > 0 {
		end = min(start+filter.Limit, len(matched))
	}
	return matched[start:end], total, nil
}

func (a *IssueAdapter) UpdateStatus(ctx context.Context, id uuid.UUID, status model.IssueStatus) error {
	return a.s.do(ctx, func(st *state) error {
		i, ok := st.issues[id]
		if !ok {
			return issue.ErrIssueNotFound
		}
		i.Status = status
		i.UpdatedAt = time.Now()
		st.issues[id] = i
		return nil
	})
}

func (a *IssueAdapter) UpdateClassification(ctx context.Context, id uuid.UUID, category string, severity model.Severity) (bool, error) {
	applied := false
	err := a.s.do(ctx, func(st *state) error {
		i, ok := st.issues[id]
		if !ok || i.Classified {
			return nil
		}
		i.Category = category
		i.Severity = severity
		i.Classified = true
		i.UpdatedAt = time.Now()
		st.issues[id] = i
		applied = true
		return nil
	})
	return applied, err
}

var _ outbound.IssueDatabasePort = (*IssueAdapter)(nil)
