package store

import "sync"

// Event identifiers for the two bus channels. Neither carries a payload;
// subscribers must re-read current state.
const (
	// EventLocalChange fires synchronously in the process that performed a
	// write, immediately after the write completes.
	EventLocalChange = "collection-changed"

	// EventStorageChange fires in processes that did NOT perform the write,
	// when the shared data directory changes on disk. The writing process
	// suppresses its own storage events and relies on EventLocalChange.
	EventStorageChange = "storage-changed"
)

// Bus is a minimal publish/subscribe hub for collection-change signals.
// It retains no history: a subscriber registered after an event fired will
// not see it and must read current state on registration.
type Bus struct {
	mu   sync.Mutex
	subs map[string]map[int]func()
	next int
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]func())}
}

// Subscribe registers fn for the given event and returns an unsubscribe
// function. Subscriptions are expected to live for the lifetime of a
// mounted view or service.
func (b *Bus) Subscribe(event string, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[event] == nil {
		b.subs[event] = make(map[int]func())
	}
	id := b.next
	b.next++
	b.subs[event][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[event], id)
	}
}

// Publish synchronously invokes every subscriber of the event. Subscribers
// run on the caller's goroutine; by the time Publish returns, all of them
// have observed the change.
func (b *Bus) Publish(event string) {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs[event]))
	for _, fn := range b.subs[event] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
