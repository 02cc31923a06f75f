package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "famledger/internal/errors"
	"famledger/internal/models"
)

// leaderboardService aggregates current-month family stats.
type leaderboardService struct {
	db *gorm.DB
}

// NewLeaderboardService creates a new LeaderboardServicer.
func NewLeaderboardService(db *gorm.DB) LeaderboardServicer {
	return &leaderboardService{db: db}
}

// GetLeaderboard buckets this calendar month's records by participant and
// derives the two rankings. Every roster participant appears in Stats even
// with zero transactions; the owner is a synthetic participant with a nil
// member reference.
func (s *leaderboardService) GetLeaderboard(userID uint) (*Leaderboard, error) {
	var user models.User
	if err := s.db.Select("display_name").First(&user, userID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	ownerName := user.DisplayName
	if ownerName == "" {
		ownerName = "You"
	}

	var members []models.FamilyMember
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&members).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	start := monthStart(time.Now())
	end := start.AddDate(0, 1, 0)

	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND expense_date >= ? AND expense_date < ?", userID, start, end).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats := BuildMemberStats(ownerName, members, expenses, incomes)

	return &Leaderboard{
		Stats:       stats,
		TopSavers:   TopSavers(stats),
		TopTrackers: TopTrackers(stats),
	}, nil
}
