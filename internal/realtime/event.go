// Package realtime delivers change notifications for a user's expense and
// income records to in-process subscribers, and reduces them into a bounded,
// recency-ordered activity feed.
package realtime

import "time"

// Action classifies what happened to a record.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Kind is the record kind a change event refers to.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// ChangeEvent is one change notification for a single record. Actor is the
// display name of the family member the record belongs to, or the account
// owner's name when the record carries no member reference.
type ChangeEvent struct {
	Action   Action    `json:"action"`
	Kind     Kind      `json:"kind"`
	RecordID uint      `json:"record_id"`
	Title    string    `json:"title"`
	Amount   int64     `json:"amount"`
	Actor    string    `json:"actor"`
	At       time.Time `json:"at"`
}

// renderable reports whether the event carries enough data to produce a
// human-readable feed line. Events missing both an amount and a title are
// dropped silently.
func (ev ChangeEvent) renderable() bool {
	return ev.Amount != 0 || ev.Title != ""
}
