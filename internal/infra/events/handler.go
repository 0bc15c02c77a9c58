package events

import "slices"

// Subscriber receives events from a Bus.
type Subscriber interface {
	// EventTypes lists the types delivered to Notify.
	EventTypes() []string
	Notify(event Event) error
}

type funcSubscriber struct {
	types []string
	fn    func(Event) error
}

func (s funcSubscriber) EventTypes() []string     { return s.types }
func (s funcSubscriber) Notify(event Event) error { return s.fn(event) }

// Subscribe turns fn into a Subscriber for eventTypes, or for every type in
// AllTypes when none are given.
func Subscribe(fn func(Event) error, eventTypes ...string) Subscriber {
	if len(eventTypes) == 0 {
		eventTypes = AllTypes
	}
	return funcSubscriber{types: slices.Clone(eventTypes), fn: fn}
}
