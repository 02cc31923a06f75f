package services

import (
	"time"

	"gorm.io/gorm"

	"famledger/internal/models"
	"famledger/internal/realtime"
)

// FeedPublisher publishes change events for the activity feed. Satisfied by
// *realtime.Hub; kept as an interface so services can be tested without one.
type FeedPublisher interface {
	Publish(userID uint, ev realtime.ChangeEvent)
}

// actorName resolves the display name attached to a record: the family
// member's name when the record carries a member reference, otherwise the
// owner's display name. Lookup failures fall back to a generic label rather
// than failing the mutation that triggered the event.
func actorName(db *gorm.DB, userID uint, memberID *uint) string {
	if memberID != nil {
		var member models.FamilyMember
		if err := db.Select("name").Where("id = ? AND user_id = ?", *memberID, userID).First(&member).Error; err == nil {
			return member.Name
		}
		return "A family member"
	}

	var user models.User
	if err := db.Select("display_name").First(&user, userID).Error; err == nil && user.DisplayName != "" {
		return user.DisplayName
	}
	return "You"
}

// publishChange emits one change event. The event is stamped with the
// current time: live feed items surface by arrival, not by the record's
// original creation time.
func publishChange(pub FeedPublisher, userID uint, action realtime.Action, kind realtime.Kind, recordID uint, title string, amount int64, actor string) {
	if pub == nil {
		return
	}
	pub.Publish(userID, realtime.ChangeEvent{
		Action:   action,
		Kind:     kind,
		RecordID: recordID,
		Title:    title,
		Amount:   amount,
		Actor:    actor,
		At:       time.Now(),
	})
}
