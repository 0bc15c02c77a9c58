package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// ReportIssueInput represents the input for reporting an issue.
type ReportIssueInput struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    *LocationInput `json:"location"`
	Images      []string       `json:"images"`
}

// LocationInput is a reported point. Coordinates are pointers so a missing
// key is distinguishable from zero.
type LocationInput struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// NewLocationInput returns a location with both coordinates set.
func NewLocationInput(longitude, latitude float64) *LocationInput {
	return &LocationInput{Longitude: &longitude, Latitude: &latitude}
}

// IsEmpty reports whether neither coordinate was given.
func (l *LocationInput) IsEmpty() bool {
	return l == nil || (l.Longitude == nil && l.Latitude == nil)
}

// Point returns the location, or false when a coordinate is missing.
func (l *LocationInput) Point() (model.Location, bool) {
	if l == nil || l.Longitude == nil || l.Latitude == nil {
		return model.Location{}, false
	}
	return model.Location{Longitude: *l.Longitude, Latitude: *l.Latitude}, true
}

// IssueDomain defines issue lifecycle operations.
type IssueDomain interface {
	// Report stores a new issue and requests its classification in the background.
	Report(ctx context.Context, reporterID *uuid.UUID, in *ReportIssueInput) (*model.Issue, error)
	GetIssue(ctx context.Context, id uuid.UUID) (*model.Issue, error)
	ListIssues(ctx context.Context, filter *model.IssueFilter) ([]*model.Issue, int64, error)

	TransitionToAssigned(ctx context.Context, id uuid.UUID) (*model.Issue, error)
	TransitionToReported(ctx context.Context, id uuid.UUID) (*model.Issue, error)
	TransitionToResolved(ctx context.Context, id uuid.UUID) (*model.Issue, error)

	// ApplyClassification stores classifier labels on an unclassified issue.
	ApplyClassification(ctx context.Context, id uuid.UUID, c *outbound.Classification) (bool, error)
}
