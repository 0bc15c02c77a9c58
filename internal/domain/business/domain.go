package business

import (
	"context"
	"errors"
	"net/mail"
	"net/url"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/inbound"
	"github.com/civicteams/server/internal/port/outbound"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 2000
	maxImages            = 5
)

// Domain implements the business directory.
type Domain struct {
	businessDB outbound.BusinessDatabasePort
	userDB     outbound.UserDatabasePort
	txPort     outbound.TransactionPort
	events     outbound.EventPublisherPort
	logger     *zap.Logger
}

// NewDomain creates a new business domain.
func NewDomain(
	businessDB outbound.BusinessDatabasePort,
	userDB outbound.UserDatabasePort,
	txPort outbound.TransactionPort,
	eventPublisher outbound.EventPublisherPort,
	logger *zap.Logger,
) *Domain {
	return &Domain{
		businessDB: businessDB,
		userDB:     userDB,
		txPort:     txPort,
		events:     eventPublisher,
		logger:     logger,
	}
}

// CreateBusiness lists a business for ownerID, who must be a business
// account without a listing.
func (d *Domain) CreateBusiness(ctx context.Context, ownerID uuid.UUID, in *inbound.CreateBusinessInput) (*model.Business, error) {
	if in == nil {
		return nil, ErrInvalidName
	}

	now := time.Now()
	b := &model.Business{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Address:     strings.TrimSpace(in.Address),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Website:     strings.TrimSpace(in.Website),
		Hours:       in.Hours,
		ImageRefs:   trimRefs(in.Images),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Location.IsEmpty() {
		return nil, ErrLocationRequired
	}
	location, ok := in.Location.Point()
	if !ok {
		return nil, ErrInvalidLocation
	}
	b.Location = location

	if err := validate(b); err != nil {
		return nil, err
	}

	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		owner, err := d.userDB.FindByIDForUpdate(txCtx, ownerID)
		if err != nil {
			return err
		}
		if !owner.IsBusiness() {
			return ErrNotBusinessUser
		}

		existing, err := d.businessDB.FindByOwner(txCtx, ownerID)
		if err != nil && !errors.Is(err, ErrBusinessNotFound) {
			return err
		}
		if existing != nil {
			return ErrListingExists
		}

		return d.businessDB.Create(txCtx, b)
	})
	if err != nil {
		return nil, err
	}

	d.events.Publish(events.NewBusinessEvent(events.BusinessListedType, b.ID, ownerID))
	d.logger.Info("business listed",
		zap.String("business_id", b.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	return b, nil
}

// GetBusiness returns a listing by ID.
func (d *Domain) GetBusiness(ctx context.Context, id uuid.UUID) (*model.Business, error) {
	return d.businessDB.FindByID(ctx, id)
}

// GetBusinessOfOwner returns the listing owned by ownerID.
func (d *Domain) GetBusinessOfOwner(ctx context.Context, ownerID uuid.UUID) (*model.Business, error) {
	return d.businessDB.FindByOwner(ctx, ownerID)
}

// ListBusinesses returns every listing, newest first.
func (d *Domain) ListBusinesses(ctx context.Context) ([]*model.Business, error) {
	return d.businessDB.List(ctx)
}

// UpdateBusiness applies in to the owner's listing. The result must still be
// a valid listing.
func (d *Domain) UpdateBusiness(ctx context.Context, ownerID uuid.UUID, in *inbound.UpdateBusinessInput) (*model.Business, error) {
	if in == nil {
		in = &inbound.UpdateBusinessInput{}
	}

	var updated *model.Business
	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		current, err := d.businessDB.FindByOwnerForUpdate(txCtx, ownerID)
		if err != nil {
			return err
		}

		b := current.Clone()
		if err := apply(b, in); err != nil {
			return err
		}
		if err := validate(b); err != nil {
			return err
		}
		b.UpdatedAt = time.Now()

		if err := d.businessDB.Update(txCtx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.events.Publish(events.NewBusinessEvent(events.BusinessUpdatedType, updated.ID, ownerID))
	d.logger.Info("business updated", zap.String("business_id", updated.ID.String()))

	return updated, nil
}

// DeleteBusiness removes the owner's listing. Stored images are left in
// object storage.
func (d *Domain) DeleteBusiness(ctx context.Context, ownerID uuid.UUID) error {
	var removed *model.Business
	err := d.txPort.RunInTransaction(ctx, func(txCtx context.Context) error {
		b, err := d.businessDB.FindByOwnerForUpdate(txCtx, ownerID)
		if err != nil {
			return err
		}
		removed = b
		return d.businessDB.Delete(txCtx, b.ID)
	})
	if err != nil {
		return err
	}

	d.events.Publish(events.NewBusinessEvent(events.BusinessRemovedType, removed.ID, ownerID))
	d.logger.Info("business removed",
		zap.String("business_id", removed.ID.String()),
		zap.Int("orphaned_images", len(removed.ImageRefs)),
	)
	return nil
}

func apply(b *model.Business, in *inbound.UpdateBusinessInput) error {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&b.Name, in.Name)
	set(&b.Description, in.Description)
	set(&b.Category, in.Category)
	set(&b.Address, in.Address)
	set(&b.Phone, in.Phone)
	set(&b.Website, in.Website)
	if in.Email != nil {
		b.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Hours != nil {
		b.Hours = in.Hours
	}

	if !in.Location.IsEmpty() {
		location, ok := in.Location.Point()
		if !ok {
			return ErrInvalidLocation
		}
		b.Location = location
	}

	b.ImageRefs = append(b.ImageRefs, trimRefs(in.Images)...)
	return nil
}

func validate(b *model.Business) error {
	if b.Name == "" || utf8.RuneCountInString(b.Name) > maxNameLength {
		return ErrInvalidName
	}
	if b.Description == "" {
		return ErrDescriptionRequired
	}
	if utf8.RuneCountInString(b.Description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if b.Category == "" {
		return ErrCategoryRequired
	}
	if b.Address == "" {
		return ErrAddressRequired
	}
	if b.Phone == "" {
		return ErrPhoneRequired
	}

	addr, err := mail.ParseAddress(b.Email)
	if err != nil || addr.Address != b.Email {
		return ErrInvalidEmail
	}

	if b.Website != "" {
		u, err := url.Parse(b.Website)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrInvalidWebsite
		}
	}

	if err := validateHours(b.Hours); err != nil {
		return err
	}

	if !b.Location.IsValid() {
		return ErrInvalidLocation
	}

	if len(b.ImageRefs) > maxImages {
		return ErrTooManyImages
	}
	for _, ref := range b.ImageRefs {
		if ref == "" || strings.Contains(ref, "..") {
			return ErrInvalidImageRef
		}
	}
	return nil
}

func validateHours(hours map[string]model.OpeningHours) error {
	for day, h := range hours {
		if !slices.Contains(model.Weekdays, day) {
			return ErrInvalidHours
		}
		open, err := time.Parse("15:04", h.Open)
		if err != nil {
			return ErrInvalidHours
		}
		closing, err := time.Parse("15:04", h.Close)
		if err != nil || !open.Before(closing) {
			return ErrInvalidHours
		}
	}
	return nil
}

func trimRefs(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, strings.TrimSpace(ref))
	}
	return out
}

// Compile-time interface check.
var _ inbound.BusinessDomain = (*Domain)(nil)
