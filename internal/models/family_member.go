package models

// FamilyMember is a named participant linked to an owner account. Individual
// expenses and incomes may reference a member; records without a member
// reference belong to the owner. The share token grants read-only external
// dashboard access without authentication.
type FamilyMember struct {
	Base
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	Name       string `gorm:"not null" json:"name"`
	Relation   string `json:"relation,omitempty"`
	ShareToken string `gorm:"uniqueIndex;not null" json:"share_token"`
}
