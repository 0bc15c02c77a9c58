package events

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBus_Publish(t *testing.T) {
	t.Run("dispatches_in_registration_order", func(t *testing.T) {
		bus := NewBus(zap.NewNop())
		var order []string
		bus.Register(Subscribe(func(Event) error {
			order = append(order, "first")
			return nil
		}, TeamCreatedType))
		bus.Register(Subscribe(func(Event) error {
			order = append(order, "second")
			return nil
		}, TeamCreatedType))

		bus.Publish(NewTeamEvent(TeamCreatedType, uuid.New(), uuid.New()))

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("failing_subscriber_does_not_stop_others", func(t *testing.T) {
		bus := NewBus(zap.NewNop())
		called := false
		bus.Register(Subscribe(func(Event) error {
			return errors.New("boom")
		}, IssueReportedType))
		bus.Register(Subscribe(func(Event) error {
			panic("worse")
		}, IssueReportedType))
		bus.Register(Subscribe(func(Event) error {
			called = true
			return nil
		}, IssueReportedType))

		bus.Publish(NewIssueReportedEvent(uuid.New(), nil))

		assert.True(t, called)
	})

	t.Run("ignores_other_types", func(t *testing.T) {
		bus := NewBus(nil)
		bus.Register(Subscribe(func(Event) error {
			t.Fatal("unexpected dispatch")
			return nil
		}, MemberJoinedType))

		bus.Publish(NewTeamEvent(MemberLeftType, uuid.New(), uuid.New()))
		assert.Equal(t, 1, bus.SubscriberCount(MemberJoinedType))
		assert.Equal(t, 0, bus.SubscriberCount(MemberLeftType))
	})
}

func TestSubscribe(t *testing.T) {
	t.Run("defaults_to_every_type", func(t *testing.T) {
		sub := Subscribe(func(Event) error { return nil })
		assert.ElementsMatch(t, AllTypes, sub.EventTypes())

		bus := NewBus(nil)
		bus.Register(sub)
		for _, eventType := range AllTypes {
			assert.Equal(t, 1, bus.SubscriberCount(eventType), eventType)
		}
	})

	t.Run("copies_types", func(t *testing.T) {
		types := []string{TeamCreatedType}
		sub := Subscribe(func(Event) error { return nil }, types...)
		types[0] = MemberLeftType

		assert.Equal(t, []string{TeamCreatedType}, sub.EventTypes())
	})
}

func TestEventConstructors(t *testing.T) {
	issueID, teamID := uuid.New(), uuid.New()

	ev := NewIssueStatusChangedEvent(issueID, teamID, "Reported", "Assigned")
	require.NotNil(t, ev)
	assert.Equal(t, IssueStatusChangedType, ev.EventType())
	assert.Equal(t, issueID, ev.AggregateID())
	assert.Equal(t, "Issue", ev.AggregateType())
	assert.NotEqual(t, uuid.Nil, ev.EventID())
	assert.False(t, ev.OccurredAt().IsZero())

	inv := NewInvitationEvent(InvitationRespondedType, uuid.New(), teamID, uuid.New(), "decline")
	assert.Equal(t, "Invitation", inv.AggregateType())
	assert.Equal(t, "decline", inv.Decision)

	ownerID := uuid.New()
	biz := NewBusinessEvent(BusinessListedType, uuid.New(), ownerID)
	assert.Equal(t, "Business", biz.AggregateType())
	assert.Equal(t, ownerID, biz.OwnerID)
}
