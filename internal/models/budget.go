package models

import "time"

// Budget caps spending for one expense category in one calendar month.
// Month is always normalized to the first day of the month. At most one
// budget may exist per (user, category, month); the database enforces this
// with a unique index.
type Budget struct {
	Base
	UserID   uint            `gorm:"not null;uniqueIndex:idx_budget_user_category_month" json:"user_id"`
	Category ExpenseCategory `gorm:"not null;uniqueIndex:idx_budget_user_category_month" json:"category"`
	Month    time.Time       `gorm:"not null;uniqueIndex:idx_budget_user_category_month" json:"month"`
	Amount   int64           `gorm:"type:bigint;not null" json:"amount"`
}
