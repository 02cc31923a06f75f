package realtime

import (
	"fmt"
	"testing"
	"time"
)

func TestFeedApply(t *testing.T) {
	t.Run("renders_created_event", func(t *testing.T) {
		feed := NewFeed()

		applied := feed.Apply(ChangeEvent{
			Action: ActionCreated, Kind: KindExpense,
			Actor: "Maria", Title: "Groceries", Amount: 4500,
		})
		if !applied {
			t.Fatal("expected event to be applied")
		}

		items := feed.Items()
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].Message != "Maria logged an expense: Groceries ($45.00)" {
			t.Errorf("unexpected message %q", items[0].Message)
		}
	})

	t.Run("drops_non_renderable_events", func(t *testing.T) {
		feed := NewFeed()

		applied := feed.Apply(ChangeEvent{
			Action: ActionDeleted, Kind: KindExpense,
			Actor: "Maria", Title: "", Amount: 0,
		})
		if applied {
			t.Error("expected event without title and amount to be dropped")
		}
		if feed.Len() != 0 {
			t.Errorf("expected empty feed, got %d items", feed.Len())
		}
	})

	t.Run("caps_at_ten_evicting_oldest", func(t *testing.T) {
		feed := NewFeed()
		base := time.Now().Add(-time.Hour)

		for i := 0; i < FeedCap+5; i++ {
			feed.SeedItem(KindExpense, "You", fmt.Sprintf("Item %d", i), 1000, base.Add(time.Duration(i)*time.Minute))
		}

		items := feed.Items()
		if len(items) != FeedCap {
			t.Fatalf("expected %d items, got %d", FeedCap, len(items))
		}
		// Newest seeded item survives at the top; the oldest five are gone.
		if items[0].Message != "You logged an expense: Item 14 ($10.00)" {
			t.Errorf("expected newest item first, got %q", items[0].Message)
		}
		if items[len(items)-1].Message != "You logged an expense: Item 5 ($10.00)" {
			t.Errorf("expected oldest surviving item last, got %q", items[len(items)-1].Message)
		}
	})

	t.Run("newest_first_order", func(t *testing.T) {
		feed := NewFeed()
		base := time.Now().Add(-time.Hour)

		// Seed out of chronological order.
		feed.SeedItem(KindExpense, "You", "Middle", 1000, base.Add(10*time.Minute))
		feed.SeedItem(KindIncome, "You", "Oldest", 1000, base)
		feed.SeedItem(KindExpense, "You", "Newest", 1000, base.Add(20*time.Minute))

		items := feed.Items()
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
		for i, want := range []string{"Newest", "Middle", "Oldest"} {
			if items[i].Message != "You logged an expense: "+want+" ($10.00)" &&
				items[i].Message != "You logged an income: "+want+" ($10.00)" {
				t.Errorf("position %d: unexpected message %q", i, items[i].Message)
			}
		}
	})

	t.Run("live_events_stamped_with_arrival_time", func(t *testing.T) {
		feed := NewFeed()
		feed.SeedItem(KindExpense, "You", "Historic", 1000, time.Now().Add(-24*time.Hour))

		feed.Apply(ChangeEvent{Action: ActionCreated, Kind: KindExpense, Actor: "You", Title: "Fresh", Amount: 2000})

		items := feed.Items()
		if items[0].Message != "You logged an expense: Fresh ($20.00)" {
			t.Errorf("expected live event at the top, got %q", items[0].Message)
		}
	})
}

func TestSeedItem(t *testing.T) {
	t.Run("keeps_historical_timestamp", func(t *testing.T) {
		feed := NewFeed()
		at := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

		feed.SeedItem(KindIncome, "Maria", "Salary", 300000, at)

		items := feed.Items()
		if !items[0].Timestamp.Equal(at) {
			t.Errorf("expected timestamp %v, got %v", at, items[0].Timestamp)
		}
	})
}

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		kind     Kind
		actor    string
		title    string
		amount   int64
		expected string
	}{
		{"created_expense", ActionCreated, KindExpense, "Maria", "Groceries", 4500, "Maria logged an expense: Groceries ($45.00)"},
		{"updated_income", ActionUpdated, KindIncome, "You", "Salary", 300000, "You updated an income: Salary ($3000.00)"},
		{"deleted_expense", ActionDeleted, KindExpense, "Alex", "Cinema", 1250, "Alex deleted an expense: Cinema ($12.50)"},
		{"untitled_record", ActionCreated, KindIncome, "You", "", 50000, "You logged an income ($500.00)"},
		{"unknown_action_falls_back", Action("archived"), KindExpense, "You", "Rent", 120000, "You logged an expense: Rent ($1200.00)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderMessage(tt.action, tt.kind, tt.actor, tt.title, tt.amount)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
