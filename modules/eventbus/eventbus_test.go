package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/example/taskboard/domain/task"
)

func TestBusDeliversToMatchingKind(t *testing.T) {
	bus := New()

	var created, updated []domain.Event
	bus.Subscribe(domain.EventCreated, func(e domain.Event) { created = append(created, e) })
	bus.Subscribe(domain.EventUpdated, func(e domain.Event) { updated = append(updated, e) })

	bus.Publish(domain.NewDeletedEvent("t-0"))
	bus.Publish(domain.NewEvent(domain.EventCreated, &domain.Task{ID: "t-1", Title: "one"}))

	require.Len(t, created, 1)
	assert.Equal(t, "t-1", created[0].TaskID)
	assert.Empty(t, updated)
}

func TestBusDeliveryIsSynchronous(t *testing.T) {
	bus := New()

	delivered := false
	bus.Subscribe(domain.EventCompleted, func(e domain.Event) { delivered = true })

	bus.Publish(domain.NewEvent(domain.EventCompleted, &domain.Task{ID: "t-1"}))

	// No goroutine hand-off: the handler has run by the time Publish
	// returns.
	assert.True(t, delivered)
}

func TestBusPanickingHandlerDoesNotStarveOthers(t *testing.T) {
	bus := New()

	var order []string
	bus.Subscribe(domain.EventCreated, func(e domain.Event) {
		order = append(order, "first")
		panic("subscriber bug")
	})
	bus.Subscribe(domain.EventCreated, func(e domain.Event) {
		order = append(order, "second")
	})

	require.NotPanics(t, func() {
		bus.Publish(domain.NewEvent(domain.EventCreated, &domain.Task{ID: "t-1"}))
	})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBusSubscribeAll(t *testing.T) {
	bus := New()

	var kinds []domain.EventKind
	bus.SubscribeAll(func(e domain.Event) { kinds = append(kinds, e.Kind) })

	bus.Publish(domain.NewEvent(domain.EventCreated, &domain.Task{ID: "a"}))
	bus.Publish(domain.NewEvent(domain.EventUpdated, &domain.Task{ID: "a"}))
	bus.Publish(domain.NewEvent(domain.EventCompleted, &domain.Task{ID: "a"}))
	bus.Publish(domain.NewDeletedEvent("a"))

	assert.Equal(t, []domain.EventKind{
		domain.EventCreated,
		domain.EventUpdated,
		domain.EventCompleted,
		domain.EventDeleted,
	}, kinds)
}

func TestEventCarriesDetachedSnapshot(t *testing.T) {
	bus := New()

	var got *domain.Task
	bus.Subscribe(domain.EventCreated, func(e domain.Event) { got = e.Task })

	live := &domain.Task{ID: "t-1", Title: "before"}
	bus.Publish(domain.NewEvent(domain.EventCreated, live))

	live.Title = "after"
	require.NotNil(t, got)
	assert.Equal(t, "before", got.Title, "subscriber must hold a snapshot, not the live record")
}
