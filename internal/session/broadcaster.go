package session

import (
	"sync"
)

// subscriberBuffer bounds each subscriber channel so one slow
// consumer cannot block publishers.
const subscriberBuffer = 16

// Broadcaster fans auth events out to any number of subscribers.
// Subscriptions are scoped: each Subscribe returns its own release
// function and releasing one never affects the others.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
	closed bool
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[int]chan Event),
	}
}

// Subscribe registers a new subscriber and returns its event channel
// together with a release function. The release function is
// idempotent and closes the channel.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	release := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(ch)
			}
		})
	}
	return ch, release
}

// Publish delivers an event to every current subscriber. Delivery is
// best-effort: a subscriber whose buffer is full misses the event
// rather than stalling the publisher.
func (b *Broadcaster) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close releases every subscriber and rejects further subscriptions.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
