package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherRunsAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string

	d.Subscribe(EventContactCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.ContactID)
		return errors.New("downstream unavailable")
	})
	d.Subscribe(EventContactCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.ContactID)
		return nil
	})
	d.Subscribe(EventContactStatusChanged, func(_ context.Context, _ Event) error {
		calls = append(calls, "status")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventContactCreated, ContactID: "c1"})
	require.Error(t, err)
	assert.Equal(t, []string{"first:c1", "second:c1"}, calls)
}

func TestDispatcherWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventContactCreated}))
}

func TestDispatcherIsolatesPanickingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()
	reached := false

	d.Subscribe(EventContactStatusChanged, func(context.Context, Event) error {
		panic("nil channel")
	})
	d.Subscribe(EventContactStatusChanged, func(context.Context, Event) error {
		reached = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventContactStatusChanged, ContactID: "c9"})
	require.Error(t, err)
	assert.True(t, reached)
	assert.Contains(t, err.Error(), "contact_status_changed")
	assert.Contains(t, err.Error(), "c9")
	assert.Contains(t, err.Error(), "nil channel")
}

func TestDispatcherKeepsHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()
	downstream := errors.New("redis down")
	d.Subscribe(EventContactCreated, func(context.Context, Event) error { return downstream })

	err := d.Publish(context.Background(), Event{Type: EventContactCreated, ContactID: "c1"})
	assert.ErrorIs(t, err, downstream)
}
