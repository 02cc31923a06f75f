package models

import "time"

// ExpenseCategory represents the spending category of an expense
type ExpenseCategory string

const (
	ExpenseCategoryFood          ExpenseCategory = "Food"
	ExpenseCategoryTransport     ExpenseCategory = "Transport"
	ExpenseCategoryHousing       ExpenseCategory = "Housing"
	ExpenseCategoryUtilities     ExpenseCategory = "Utilities"
	ExpenseCategoryEntertainment ExpenseCategory = "Entertainment"
	ExpenseCategoryShopping      ExpenseCategory = "Shopping"
	ExpenseCategoryHealth        ExpenseCategory = "Health"
	ExpenseCategoryEducation     ExpenseCategory = "Education"
	ExpenseCategoryTravel        ExpenseCategory = "Travel"
	ExpenseCategoryOther         ExpenseCategory = "Other"
)

// PaymentType represents how an expense was paid
type PaymentType string

const (
	PaymentTypeCash         PaymentType = "Cash"
	PaymentTypeCard         PaymentType = "Card"
	PaymentTypeUPI          PaymentType = "UPI"
	PaymentTypeBankTransfer PaymentType = "BankTransfer"
	PaymentTypeOther        PaymentType = "Other"
)

// Expense represents a single spending record. Amount is stored in cents.
// A nil MemberID means the record belongs to the account owner.
type Expense struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	MemberID    *uint           `gorm:"index" json:"member_id,omitempty"`
	Title       string          `gorm:"not null" json:"title"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Category    ExpenseCategory `gorm:"not null" json:"category"`
	ExpenseDate time.Time       `gorm:"not null;index" json:"expense_date"`
	PaymentType PaymentType     `json:"payment_type,omitempty"`
	Description string          `json:"description,omitempty"`

	Member *FamilyMember `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}
