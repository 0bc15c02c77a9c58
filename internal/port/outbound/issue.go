package outbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
)

// IssueDatabasePort defines issue persistence operations.
type IssueDatabasePort interface {
	// Create creates a new issue.
	Create(ctx context.Context, issue *model.Issue) error

	// FindByID finds an issue by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Issue, error)

	// FindByIDForUpdate finds an issue by ID and locks the row for the
	// remainder of the surrounding transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Issue, error)

	// List lists issues matching the filter, newest first, with the total count.
	List(ctx context.Context, filter *model.IssueFilter) ([]*model.Issue, int64, error)

	// UpdateStatus sets the status of an issue.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.IssueStatus) error

	// UpdateClassification stores classifier labels unless the issue has already
	// been classified. It reports whether the labels were applied.
	UpdateClassification(ctx context.Context, id uuid.UUID, category string, severity model.Severity) (bool, error)
}
