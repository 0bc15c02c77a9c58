package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/civicteams/server/internal/domain/business"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// BusinessAdapter implements outbound.BusinessDatabasePort.
type BusinessAdapter struct {
	db *gorm.DB
}

// NewBusinessAdapter creates a new business adapter.
func NewBusinessAdapter(db *gorm.DB) *BusinessAdapter {
	return &BusinessAdapter{db: db}
}

func (a *BusinessAdapter) Create(ctx context.Context, b *model.Business) error {
	err := conn(ctx, a.db).Create(b).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return business.ErrListingExists
	}
	return err
}

func (a *BusinessAdapter) FindByID(ctx context.Context, id uuid.UUID) (*model.Business, error) {
	return a.first(conn(ctx, a.db).Where("id = ?", id))
}

func (a *BusinessAdapter) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Business, error) {
	return a.first(conn(ctx, a.db).Where("owner_id = ?", ownerID))
}

func (a *BusinessAdapter) FindByOwnerForUpdate(ctx context.Context, ownerID uuid.UUID) (*model.Business, error) {
	return a.first(forUpdate(conn(ctx, a.db)).Where("owner_id = ?", ownerID))
}

func (a *BusinessAdapter) List(ctx context.Context) ([]*model.Business, error) {
	var businesses []*model.Business
	if err := conn(ctx, a.db).Order("created_at DESC, id ASC").Find(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}

// Update writes every column of b, including zero values.
func (a *BusinessAdapter) Update(ctx context.Context, b *model.Business) error {
	result := conn(ctx, a.db).Select("*").Omit("id", "owner_id", "created_at").Updates(b)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return business.ErrBusinessNotFound
	}
	return nil
}

func (a *BusinessAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, a.db).Where("id = ?", id).Delete(&model.Business{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return business.ErrBusinessNotFound
	}
	return nil
}

func (a *BusinessAdapter) first(query *gorm.DB) (*model.Business, error) {
	var b model.Business
	if err := query.First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, business.ErrBusinessNotFound
		}
		return nil, err
	}
	return &b, nil
}

var _ outbound.BusinessDatabasePort = (*BusinessAdapter)(nil)
