package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "famledger/internal/errors"
	"famledger/internal/models"
	"famledger/internal/pagination"
	"famledger/internal/realtime"
)

// incomeService handles income business logic.
type incomeService struct {
	db  *gorm.DB
	pub FeedPublisher
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB, pub FeedPublisher) IncomeServicer {
	return &incomeService{db: db, pub: pub}
}

// CreateIncome creates a new income record and publishes a feed event.
func (s *incomeService) CreateIncome(
	userID uint,
	memberID *uint,
	source models.IncomeSource,
	amount int64,
	date time.Time,
	description string,
) (*models.Income, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if date.IsZero() {
		date = time.Now()
	}

	if memberID != nil {
		var count int64
		if err := s.db.Model(&models.FamilyMember{}).
			Where("id = ? AND user_id = ?", *memberID, userID).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			return nil, apperrors.ErrMemberNotFound
		}
	}

	income := &models.Income{
		UserID:      userID,
		MemberID:    memberID,
		Source:      source,
		Amount:      amount,
		Date:        date,
		Description: description,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	actor := actorName(s.db, userID, memberID)
	publishChange(s.pub, userID, realtime.ActionCreated, realtime.KindIncome, income.ID, string(income.Source), income.Amount, actor)

	return income, nil
}

// GetUserIncomes retrieves a paginated, filtered list of income records,
// most recent date first.
func (s *incomeService) GetUserIncomes(userID uint, page pagination.PageRequest, filter IncomeFilter) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	base := s.db.Model(&models.Income{}).Where("user_id = ?", userID)
	if filter.MemberID != nil {
		base = base.Where("member_id = ?", *filter.MemberID)
	}
	if filter.Source != nil {
		base = base.Where("source = ?", *filter.Source)
	}
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Preload("Member").Order("date DESC, id DESC").
		Scopes(pagination.Paginate(page)).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetIncomeByID returns an income record by ID if it belongs to the user.
func (s *incomeService) GetIncomeByID(userID, incomeID uint) (*models.Income, error) {
	var income models.Income
	if err := s.db.Preload("Member").Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncome updates an existing income record and publishes a feed event.
func (s *incomeService) UpdateIncome(
	userID, incomeID uint,
	source *models.IncomeSource,
	amount *int64,
	date *time.Time,
	description *string,
) (*models.Income, error) {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if source != nil {
		updates["source"] = *source
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *amount
	}
	if date != nil {
		updates["date"] = *date
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(income).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	actor := actorName(s.db, userID, income.MemberID)
	publishChange(s.pub, userID, realtime.ActionUpdated, realtime.KindIncome, income.ID, string(income.Source), income.Amount, actor)

	return income, nil
}

// DeleteIncome soft-deletes an income record and publishes a feed event.
func (s *incomeService) DeleteIncome(userID, incomeID uint) error {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	actor := actorName(s.db, userID, income.MemberID)
	publishChange(s.pub, userID, realtime.ActionDeleted, realtime.KindIncome, income.ID, string(income.Source), income.Amount, actor)

	return nil
}
