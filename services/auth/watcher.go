package auth

import (
	"sync"

	"rent2reuse/services/access"
)

// SessionState is the reactive session snapshot published to subscribers.
type SessionState struct {
	Authenticated bool        `json:"isAuthenticated"`
	Role          access.Role `json:"adminRole,omitempty"`
	Loading       bool        `json:"loading"`
}

// SessionWatcher is the single reactive source of session state. Components
// subscribe instead of re-querying the identity provider independently.
// Unsubscribe and Close are exactly-once; a slow subscriber never blocks a
// publish.
type SessionWatcher struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan SessionState
	last   SessionState
	closed bool
}

// NewSessionWatcher creates a watcher in the loading state.
func NewSessionWatcher() *SessionWatcher {
	return &SessionWatcher{
		subs: make(map[int]chan SessionState),
		last: SessionState{Loading: true},
	}
}

// Subscribe registers a subscriber and delivers the current state first.
// The returned cancel function is safe to call more than once.
func (w *SessionWatcher) Subscribe() (<-chan SessionState, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ch := make(chan SessionState, 8)
	if w.closed {
		close(ch)
		return ch, func() {}
	}

	id := w.nextID
	w.nextID++
	w.subs[id] = ch
	ch <- w.last

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			if sub, ok := w.subs[id]; ok {
				delete(w.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Publish fans the state out to every subscriber without blocking; a full
// subscriber buffer drops the intermediate state, the next publish catches up.
func (w *SessionWatcher) Publish(state SessionState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.last = state
	for _, ch := range w.subs {
		select {
		case ch <- state:
		default:
		}
	}
}

// Current returns the most recently published state.
func (w *SessionWatcher) Current() SessionState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Close tears down every subscription exactly once.
func (w *SessionWatcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	for id, ch := range w.subs {
		delete(w.subs, id)
		close(ch)
	}
}
