package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcasterFanOut(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	ch1, release1 := b.Subscribe()
	ch2, release2 := b.Subscribe()
	defer release1()
	defer release2()

	b.Publish(Event{Kind: EventSignedOut})

	ev1 := <-ch1
	ev2 := <-ch2
	assert.Equal(t, EventSignedOut, ev1.Kind)
	assert.Equal(t, EventSignedOut, ev2.Kind)
}

func TestBroadcasterScopedRelease(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	ch1, release1 := b.Subscribe()
	ch2, release2 := b.Subscribe()
	defer release2()

	release1()
	// Releasing twice is harmless.
	release1()

	_, open := <-ch1
	assert.False(t, open, "released channel should be closed")

	b.Publish(Event{Kind: EventSignedOut})
	ev := <-ch2
	assert.Equal(t, EventSignedOut, ev.Kind, "other subscriptions keep receiving")
}

func TestBroadcasterClose(t *testing.T) {
	b := NewBroadcaster()

	ch, release := b.Subscribe()
	defer release()

	b.Close()

	_, open := <-ch
	require.False(t, open)

	// Subscriptions after close come back already closed.
	late, _ := b.Subscribe()
	_, open = <-late
	assert.False(t, open)
}
