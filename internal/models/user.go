package models

import "time"

// User represents an account owner. All records in the system are scoped to
// exactly one user; the owner also acts as a synthetic participant in
// leaderboard and feed aggregations.
type User struct {
	Base
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	DisplayName      string     `json:"display_name"`
	RefreshTokenHash string     `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`

	Members  []FamilyMember  `gorm:"foreignKey:UserID" json:"members,omitempty"`
	Expenses []Expense       `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Incomes  []Income        `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Bills    []EssentialBill `gorm:"foreignKey:UserID" json:"bills,omitempty"`
	Budgets  []Budget        `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
}
