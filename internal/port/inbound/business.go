package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
)

// CreateBusinessInput represents the input for listing a business.
type CreateBusinessInput struct {
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	Category    string                        `json:"category"`
	Address     string                        `json:"address"`
	Phone       string                        `json:"phone"`
	Email       string                        `json:"email"`
	Website     string                        `json:"website"`
	Hours       map[string]model.OpeningHours `json:"hours"`
	Location    *LocationInput                `json:"location"`
	Images      []string                      `json:"images"`
}

// UpdateBusinessInput changes a listing. Nil fields keep their current
// value and Images are appended to the stored ones.
type UpdateBusinessInput struct {
	Name        *string                       `json:"name"`
	Description *string                       `json:"description"`
	Category    *string                       `json:"category"`
	Address     *string                       `json:"address"`
	Phone       *string                       `json:"phone"`
	Email       *string                       `json:"email"`
	Website     *string                       `json:"website"`
	Hours       map[string]model.OpeningHours `json:"hours"`
	Location    *LocationInput                `json:"location"`
	Images      []string                      `json:"images"`
}

// BusinessDomain defines the business directory operations. Only business
// accounts own listings, one each.
type BusinessDomain interface {
	CreateBusiness(ctx context.Context, ownerID uuid.UUID, in *CreateBusinessInput) (*model.Business, error)
	GetBusiness(ctx context.Context, id uuid.UUID) (*model.Business, error)
	GetBusinessOfOwner(ctx context.Context, ownerID uuid.UUID) (*model.Business, error)
	ListBusinesses(ctx context.Context) ([]*model.Business, error)
	UpdateBusiness(ctx context.Context, ownerID uuid.UUID, in *UpdateBusinessInput) (*model.Business, error)
	DeleteBusiness(ctx context.Context, ownerID uuid.UUID) error
}
