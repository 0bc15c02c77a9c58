package outbound

import (
	"context"

	"github.com/civicteams/server/internal/model"
)

// Classification is the labelling produced by the triage classifier.
type Classification struct {
	Category string
	Severity model.Severity
}

// ClassifierPort labels an issue description.
type ClassifierPort interface {
	// Classify returns the labels for a description. Any failure, including a
	// timeout or an open circuit, is reported as an upstream-unavailable error.
	Classify(ctx context.Context, description string) (*Classification, error)
}
