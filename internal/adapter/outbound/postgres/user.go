package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/civicteams/server/internal/domain/user"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// userAdapter implements outbound.UserDatabasePort.
type userAdapter struct {
	db *gorm.DB
}

// NewUserAdapter creates a new user database adapter.
func NewUserAdapter(db *gorm.DB) outbound.UserDatabasePort {
	return &userAdapter{db: db}
}

func (a *userAdapter) Create(ctx context.Context, u *model.User) error {
	err := conn(ctx, a.db).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return user.ErrEmailTaken
	}
	return err
}

func (a *userAdapter) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return a.first(conn(ctx, a.db).Where("id = ?", id))
}

func (a *userAdapter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return a.first(forUpdate(conn(ctx, a.db)).Where("id = ?", id))
}

func (a *userAdapter) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return a.first(conn(ctx, a.db).Where("email = ?", email))
}

func (a *userAdapter) List(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := conn(ctx, a.db).Order("name ASC, id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (a *userAdapter) IncrementReputation(ctx context.Context, ids []uuid.UUID, delta int) error {
	if len(ids) == 0 {
		return nil
	}
	return conn(ctx, a.db).
		Model(&model.User{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"reputation": gorm.Expr("reputation + ?", delta),
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}

func (a *userAdapter) first(query *gorm.DB) (*model.User, error) {
	var u model.User
	if err := query.First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Compile-time check
var _ outbound.UserDatabasePort = (*userAdapter)(nil)
