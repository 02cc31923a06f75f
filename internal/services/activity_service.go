package services

import (
	"gorm.io/gorm"

	"famledger/internal/logger"
	"famledger/internal/models"
	"famledger/internal/realtime"
)

// feedSeedLimit bounds the initial history query per record kind.
const feedSeedLimit = realtime.FeedCap

// activityService builds activity feeds and hands out event subscriptions.
type activityService struct {
	db  *gorm.DB
	hub *realtime.Hub
}

// NewActivityService creates a new ActivityServicer.
func NewActivityService(db *gorm.DB, hub *realtime.Hub) ActivityServicer {
	return &activityService{db: db, hub: hub}
}

// BuildFeed seeds a fresh feed from the user's most recent expense and
// income records, merged by creation time. A failed history query fails open
// to an empty feed: the subscription is independent and keeps delivering
// live items either way.
func (s *activityService) BuildFeed(userID uint) *realtime.Feed {
	feed := realtime.NewFeed()

	ownerName := "You"
	var user models.User
	if err := s.db.Select("display_name").First(&user, userID).Error; err == nil && user.DisplayName != "" {
		ownerName = user.DisplayName
	}

	memberNames := make(map[uint]string)
	var members []models.FamilyMember
	if err := s.db.Where("user_id = ?", userID).Find(&members).Error; err == nil {
		for _, m := range members {
			memberNames[m.ID] = m.Name
		}
	}

	actorFor := func(memberID *uint) string {
		if memberID != nil {
			if name, ok := memberNames[*memberID]; ok {
				return name
			}
			return "A family member"
		}
		return ownerName
	}

	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(feedSeedLimit).Find(&expenses).Error; err != nil {
		logger.Get().Warnw("activity feed history unavailable", "user_id", userID, "error", err.Error())
	} else {
		for _, e := range expenses {
			feed.SeedItem(realtime.KindExpense, actorFor(e.MemberID), e.Title, e.Amount, e.CreatedAt)
		}
	}

	var incomes []models.Income
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(feedSeedLimit).Find(&incomes).Error; err != nil {
		logger.Get().Warnw("activity feed history unavailable", "user_id", userID, "error", err.Error())
	} else {
		for _, in := range incomes {
			feed.SeedItem(realtime.KindIncome, actorFor(in.MemberID), string(in.Source), in.Amount, in.CreatedAt)
		}
	}

	return feed
}

// Subscribe registers a live event subscription for the user.
func (s *activityService) Subscribe(userID uint) (<-chan realtime.ChangeEvent, func()) {
	return s.hub.Subscribe(userID)
}
