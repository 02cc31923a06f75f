package realtime

import "sync"

// subscriberBuffer is the channel depth per subscriber. Publishers never
// block: events for a subscriber whose buffer is full are dropped.
const subscriberBuffer = 16

type subscriber struct {
	ch chan ChangeEvent
}

// Hub fans change events out to per-user subscribers. Services publish on
// every expense/income mutation; feed consumers subscribe per session.
type Hub struct {
	mu   sync.Mutex
	subs map[uint]map[*subscriber]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uint]map[*subscriber]struct{})}
}

// Publish delivers an event to every active subscriber for the user.
// Delivery is best-effort and non-blocking.
func (h *Hub) Publish(userID uint, ev ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs[userID] {
		select {
		case sub.ch <- ev:
		default:
			// Slow consumer: drop rather than block the publisher.
		}
	}
}

// Subscribe registers a new subscriber for the user's events. The returned
// cancel func unregisters the subscriber and closes the channel; calling it
// more than once is safe.
func (h *Hub) Subscribe(userID uint) (<-chan ChangeEvent, func()) {
	sub := &subscriber{ch: make(chan ChangeEvent, subscriberBuffer)}

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[*subscriber]struct{})
	}
	h.subs[userID][sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[userID], sub)
			if len(h.subs[userID]) == 0 {
				delete(h.subs, userID)
			}
			h.mu.Unlock()
			close(sub.ch)
		})
	}

	return sub.ch, cancel
}

// SubscriberCount returns the number of active subscribers for a user.
func (h *Hub) SubscriberCount(userID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[userID])
}
