package auth

import (
	"sync"
	"time"
)

// IdleMonitor force-expires admin sessions after a fixed inactivity window.
// Touch re-arms the countdown; the previous timer is always stopped before a
// new one is armed, so a uid never has overlapping timers and expiry fires at
// most once per arming.
type IdleMonitor struct {
	mu       sync.Mutex
	window   time.Duration
	onExpire func(uid string)
	timers   map[string]*time.Timer
	closed   bool
}

// NewIdleMonitor creates a monitor. onExpire runs outside the monitor's lock
// once per expired arming.
func NewIdleMonitor(window time.Duration, onExpire func(uid string)) *IdleMonitor {
	return &IdleMonitor{
		window:   window,
		onExpire: onExpire,
		timers:   make(map[string]*time.Timer),
	}
}

// Touch resets the inactivity countdown for the uid.
func (m *IdleMonitor) Touch(uid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if prev, ok := m.timers[uid]; ok {
		prev.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(m.window, func() {
		m.mu.Lock()
		// A Touch may have re-armed between this timer firing and taking the
		// lock; only the timer still registered for the uid may expire it.
		if m.closed || m.timers[uid] != t {
			m.mu.Unlock()
			return
		}
		delete(m.timers, uid)
		m.mu.Unlock()
		m.onExpire(uid)
	})
	m.timers[uid] = t
}

// Stop cancels the countdown for the uid without firing it.
func (m *IdleMonitor) Stop(uid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.timers[uid]; ok {
		t.Stop()
		delete(m.timers, uid)
	}
}

// Close cancels every pending timer; no expiry fires afterwards.
func (m *IdleMonitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	for uid, t := range m.timers {
		t.Stop()
		delete(m.timers, uid)
	}
}
