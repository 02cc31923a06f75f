package models

import "time"

// IncomeSource represents where an income record came from
type IncomeSource string

const (
	IncomeSourceSalary     IncomeSource = "Salary"
	IncomeSourceBusiness   IncomeSource = "Business"
	IncomeSourceFreelance  IncomeSource = "Freelance"
	IncomeSourceInvestment IncomeSource = "Investment"
	IncomeSourceRental     IncomeSource = "Rental"
	IncomeSourceGift       IncomeSource = "Gift"
	IncomeSourceOther      IncomeSource = "Other"
)

// Income represents a single earning record. Amount is stored in cents.
// A nil MemberID means the record belongs to the account owner.
type Income struct {
	Base
	UserID      uint         `gorm:"not null;index" json:"user_id"`
	MemberID    *uint        `gorm:"index" json:"member_id,omitempty"`
	Source      IncomeSource `gorm:"not null" json:"source"`
	Amount      int64        `gorm:"type:bigint;not null" json:"amount"`
	Date        time.Time    `gorm:"not null;index" json:"date"`
	Description string       `json:"description,omitempty"`

	Member *FamilyMember `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}
