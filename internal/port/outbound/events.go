package outbound

import "github.com/civicteams/server/internal/infra/events"

// EventPublisherPort publishes domain events after a mutation commits.
type EventPublisherPort interface {
	Publish(event events.Event)
}
