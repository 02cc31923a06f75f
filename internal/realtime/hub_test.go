package realtime

import (
	"testing"
	"time"
)

func TestHubPublish(t *testing.T) {
	t.Run("delivers_to_subscriber", func(t *testing.T) {
		hub := NewHub()
		events, cancel := hub.Subscribe(1)
		defer cancel()

		hub.Publish(1, ChangeEvent{Action: ActionCreated, Kind: KindExpense, Title: "Groceries", Amount: 4500})

		select {
		case ev := <-events:
			if ev.Title != "Groceries" {
				t.Errorf("expected Groceries, got %q", ev.Title)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	})

	t.Run("isolated_per_user", func(t *testing.T) {
		hub := NewHub()
		other, cancel := hub.Subscribe(2)
		defer cancel()

		hub.Publish(1, ChangeEvent{Action: ActionCreated, Kind: KindExpense, Title: "Groceries", Amount: 4500})

		select {
		case ev := <-other:
			t.Errorf("subscriber for user 2 received user 1's event: %+v", ev)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("fans_out_to_all_subscribers", func(t *testing.T) {
		hub := NewHub()
		ch1, cancel1 := hub.Subscribe(1)
		defer cancel1()
		ch2, cancel2 := hub.Subscribe(1)
		defer cancel2()

		hub.Publish(1, ChangeEvent{Action: ActionCreated, Kind: KindIncome, Title: "Salary", Amount: 300000})

		for _, ch := range []<-chan ChangeEvent{ch1, ch2} {
			select {
			case ev := <-ch:
				if ev.Title != "Salary" {
					t.Errorf("expected Salary, got %q", ev.Title)
				}
			case <-time.After(time.Second):
				t.Fatal("timed out waiting for fan-out")
			}
		}
	})

	t.Run("slow_consumer_does_not_block", func(t *testing.T) {
		hub := NewHub()
		events, cancel := hub.Subscribe(1)
		defer cancel()

		// Overfill the subscriber buffer without draining. Publish must
		// return every time.
		done := make(chan struct{})
		go func() {
			for i := 0; i < subscriberBuffer*2; i++ {
				hub.Publish(1, ChangeEvent{Action: ActionCreated, Kind: KindExpense, Title: "Spam", Amount: 100})
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("publisher blocked on a slow consumer")
		}

		if got := len(events); got > subscriberBuffer {
			t.Errorf("expected at most %d buffered events, got %d", subscriberBuffer, got)
		}
	})
}

func TestHubSubscribe(t *testing.T) {
	t.Run("cancel_unregisters_and_closes", func(t *testing.T) {
		hub := NewHub()
		events, cancel := hub.Subscribe(1)

		cancel()

		if hub.SubscriberCount(1) != 0 {
			t.Errorf("expected no subscribers, got %d", hub.SubscriberCount(1))
		}
		if _, ok := <-events; ok {
			t.Error("expected channel to be closed")
		}
	})

	t.Run("cancel_is_idempotent", func(t *testing.T) {
		hub := NewHub()
		_, cancel := hub.Subscribe(1)

		cancel()
		cancel()

		if hub.SubscriberCount(1) != 0 {
			t.Errorf("expected no subscribers, got %d", hub.SubscriberCount(1))
		}
	})

	t.Run("counts_active_subscribers", func(t *testing.T) {
		hub := NewHub()
		_, cancel1 := hub.Subscribe(1)
		defer cancel1()
		_, cancel2 := hub.Subscribe(1)

		if hub.SubscriberCount(1) != 2 {
			t.Errorf("expected 2 subscribers, got %d", hub.SubscriberCount(1))
		}

		cancel2()
		if hub.SubscriberCount(1) != 1 {
			t.Errorf("expected 1 subscriber after cancel, got %d", hub.SubscriberCount(1))
		}
	})
}
