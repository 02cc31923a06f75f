package models

import "time"

// BillCategory represents the category of an essential bill
type BillCategory string

const (
	BillCategoryRent         BillCategory = "Rent"
	BillCategoryElectricity  BillCategory = "Electricity"
	BillCategoryWater        BillCategory = "Water"
	BillCategoryInternet     BillCategory = "Internet"
	BillCategoryPhone        BillCategory = "Phone"
	BillCategoryInsurance    BillCategory = "Insurance"
	BillCategorySubscription BillCategory = "Subscription"
	BillCategoryOther        BillCategory = "Other"
)

// PaymentStatus represents the payment state of a bill
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusOverdue PaymentStatus = "Overdue"
)

// Recurrence represents how often a bill repeats
type Recurrence string

const (
	RecurrenceMonthly   Recurrence = "Monthly"
	RecurrenceQuarterly Recurrence = "Quarterly"
	RecurrenceYearly    Recurrence = "Yearly"
	RecurrenceOneTime   Recurrence = "OneTime"
)

// EssentialBill represents a recurring household bill. Amount is stored in cents.
type EssentialBill struct {
	Base
	UserID        uint          `gorm:"not null;index" json:"user_id"`
	Title         string        `gorm:"not null" json:"title"`
	Category      BillCategory  `gorm:"not null" json:"category"`
	Amount        int64         `gorm:"type:bigint;not null" json:"amount"`
	DueDate       time.Time     `gorm:"not null;index" json:"due_date"`
	PaymentStatus PaymentStatus `gorm:"not null;default:'Pending'" json:"payment_status"`
	Recurrence    Recurrence    `gorm:"not null" json:"recurrence"`
	LastPaidDate  *time.Time    `json:"last_paid_date,omitempty"`
	BillURL       string        `json:"bill_url,omitempty"`
	Description   string        `json:"description,omitempty"`
}
