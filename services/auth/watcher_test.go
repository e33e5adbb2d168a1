package auth

import (
	"testing"

	"rent2reuse/services/access"
)

func TestWatcherDeliversCurrentStateOnSubscribe(t *testing.T) {
	w := NewSessionWatcher()
	defer w.Close()

	ch, cancel := w.Subscribe()
	defer cancel()

	state := <-ch
	if !state.Loading {
		t.Fatal("initial state should be loading")
	}
}

func TestWatcherPublishFansOut(t *testing.T) {
	w := NewSessionWatcher()
	defer w.Close()

	ch1, cancel1 := w.Subscribe()
	ch2, cancel2 := w.Subscribe()
	defer cancel1()
	defer cancel2()
	<-ch1
	<-ch2

	w.Publish(SessionState{Authenticated: true, Role: access.RoleAdmin})

	for i, ch := range []<-chan SessionState{ch1, ch2} {
		state := <-ch
		if !state.Authenticated || state.Role != access.RoleAdmin {
			t.Fatalf("subscriber %d got wrong state: %+v", i, state)
		}
	}
}

func TestWatcherUnsubscribeIsExactlyOnce(t *testing.T) {
	w := NewSessionWatcher()
	defer w.Close()

	ch, cancel := w.Subscribe()
	<-ch
	cancel()
	cancel() // second call must be a no-op, not a double close

	if _, open := <-ch; open {
		t.Fatal("channel should be closed after unsubscribe")
	}

	// Publishing after unsubscribe must not panic on the closed channel.
	w.Publish(SessionState{Authenticated: false})
}

func TestWatcherCloseTearsDownSubscribers(t *testing.T) {
	w := NewSessionWatcher()
	ch, cancel := w.Subscribe()
	<-ch

	w.Close()
	w.Close() // idempotent

	if _, open := <-ch; open {
		t.Fatal("channel should be closed after watcher Close")
	}

	// Cancel after Close must not panic.
	cancel()

	// Subscribe after Close yields a closed channel.
	ch2, cancel2 := w.Subscribe()
	if _, open := <-ch2; open {
		t.Fatal("subscribe after Close should return a closed channel")
	}
	cancel2()
}

func TestWatcherSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	w := NewSessionWatcher()
	defer w.Close()

	_, cancel := w.Subscribe()
	defer cancel()

	// Overflow the buffer; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			w.Publish(SessionState{Authenticated: i%2 == 0})
		}
		close(done)
	}()
	<-done

	if got := w.Current(); got.Loading {
		t.Fatal("current state should reflect the last publish")
	}
}
