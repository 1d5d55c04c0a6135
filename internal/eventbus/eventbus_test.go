package eventbus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New[RunEvent]()
	defer b.Close()
	sub := b.Subscribe()

	b.Publish(RunEvent{RunID: "r1", Stage: StagePartitioned, Strategy: "balanced", Groups: 3})

	select {
	case ev := <-sub:
		if ev.RunID != "r1" || ev.Stage != StagePartitioned || ev.Groups != 3 {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	b := New[RunEvent]()
	defer b.Close()
	b.Subscribe() // never drained

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(RunEvent{RunID: "r"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on full subscriber channel")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := New[RunEvent]()
	sub := b.Subscribe()
	b.Unsubscribe(sub)
	if _, ok := <-sub; ok {
		t.Fatal("expected closed channel after unsubscribe")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New[RunEvent]()
	sub := b.Subscribe()
	b.Close()
	b.Close()
	if _, ok := <-sub; ok {
		t.Fatal("expected closed channel after Close")
	}
	b.Publish(RunEvent{}) // must not panic
	if sub2 := b.Subscribe(); sub2 == nil {
		t.Fatal("Subscribe after Close must return a closed channel, not nil")
	}
}
