package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/civicteams/server/internal/domain/issue"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// IssueAdapter implements IssueDatabasePort.
type IssueAdapter struct {
	db *gorm.DB
}

// NewIssueAdapter creates a new issue adapter.
func NewIssueAdapter(db *gorm.DB) *IssueAdapter {
	return &IssueAdapter{db: db}
}

func (a *IssueAdapter) Create(ctx context.Context, i *model.Issue) error {
	return conn(ctx, a.db).Create(i).Error
}

func (a *IssueAdapter) FindByID(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	return a.first(conn(ctx, a.db).Where("id = ?", id))
}

func (a *IssueAdapter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	return a.first(forUpdate(conn(ctx, a.db)).Where("id = ?", id))
}

func (a *IssueAdapter) List(ctx context.Context, filter *model.IssueFilter) ([]*model.Issue, int64, error) {
	query := conn(ctx, a.db).Model(&model.Issue{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filter.ReporterID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var issues []*model.Issue
	err := query.
		Order("created_at DESC, id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&issues).Error
	if err != nil {
		return nil, 0, err
	}
	return issues, total, nil
}

func (a *IssueAdapter) UpdateStatus(ctx context.Context, id uuid.UUID, status model.IssueStatus) error {
	result := conn(ctx, a.db).
		Model(&model.Issue{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": gorm.Expr("NOW()")})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return issue.ErrIssueNotFound
	}
	return nil
}

// UpdateClassification writes the labels only while the issue is still
// unclassified, so a late classifier result never overwrites an earlier one.
func (a *IssueAdapter) UpdateClassification(ctx context.Context, id uuid.UUID, category string, severity model.Severity) (bool, error) {
	result := conn(ctx, a.db).
		Model(&model.Issue{}).
		Where("id = ? AND classified = ?", id, false).
		Updates(map[string]any{
			"category":   category,
			"severity":   severity,
			"classified": true,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (a *IssueAdapter) first(query *gorm.DB) (*model.Issue, error) {
	var i model.Issue
	if err := query.First(&i).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, issue.ErrIssueNotFound
		}
		return nil, err
	}
	return &i, nil
}

var _ outbound.IssueDatabasePort = (*IssueAdapter)(nil)
