package realtime

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"famledger/internal/money"
)

// FeedCap is the maximum number of items a feed retains. Appends past the
// cap evict the oldest item.
const FeedCap = 10

// ActivityItem is one rendered line of the activity feed.
type ActivityItem struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Feed is a bounded, recency-ordered list of activity items. It is safe for
// concurrent use: the subscription goroutine applies events while HTTP
// writers read snapshots.
type Feed struct {
	mu    sync.Mutex
	items []ActivityItem
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{}
}

// SeedItem inserts a historical item with its original timestamp. Used when
// building the initial feed from the most recent stored records.
func (f *Feed) SeedItem(kind Kind, actor, title string, amount int64, at time.Time) {
	f.insert(ActivityItem{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   RenderMessage(ActionCreated, kind, actor, title, amount),
		Timestamp: at,
	})
}

// Apply reduces one change event into the feed. Live items are stamped with
// the arrival time rather than the record's creation time, so fresh activity
// always surfaces at the top. Returns false when the event is not renderable
// and was dropped.
func (f *Feed) Apply(ev ChangeEvent) bool {
	if !ev.renderable() {
		return false
	}
	f.insert(ActivityItem{
		ID:        uuid.New().String(),
		Kind:      ev.Kind,
		Message:   RenderMessage(ev.Action, ev.Kind, ev.Actor, ev.Title, ev.Amount),
		Timestamp: time.Now(),
	})
	return true
}

// insert adds an item, restores descending timestamp order, and truncates
// back to the cap. Truncation always drops the oldest entries.
func (f *Feed) insert(item ActivityItem) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, item)
	sort.SliceStable(f.items, func(i, j int) bool {
		return f.items[i].Timestamp.After(f.items[j].Timestamp)
	})
	if len(f.items) > FeedCap {
		f.items = f.items[:FeedCap]
	}
}

// Items returns a snapshot of the feed, newest first.
func (f *Feed) Items() []ActivityItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]ActivityItem, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the current number of items.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// RenderMessage produces the human-readable feed line for an event, e.g.
// "Maria logged an expense: Groceries ($45.00)".
func RenderMessage(action Action, kind Kind, actor, title string, amount int64) string {
	var verb string
	switch action {
	case ActionCreated:
		verb = "logged"
	case ActionUpdated:
		verb = "updated"
	case ActionDeleted:
		verb = "deleted"
	default:
		verb = "logged"
	}

	if title == "" {
		return fmt.Sprintf("%s %s an %s (%s)", actor, verb, kind, money.Format(amount))
	}
	return fmt.Sprintf("%s %s an %s: %s (%s)", actor, verb, kind, title, money.Format(amount))
}
