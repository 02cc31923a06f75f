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

// expenseService handles expense business logic.
type expenseService struct {
	db  *gorm.DB
	pub FeedPublisher
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, pub FeedPublisher) ExpenseServicer {
	return &expenseService{db: db, pub: pub}
}

// CreateExpense creates a new expense record and publishes a feed event.
func (s *expenseService) CreateExpense(
	userID uint,
	memberID *uint,
	title string,
	amount int64,
	category models.ExpenseCategory,
	expenseDate time.Time,
	paymentType models.PaymentType,
	description string,
) (*models.Expense, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if expenseDate.IsZero() {
		expenseDate = time.Now()
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

	expense := &models.Expense{
		UserID:      userID,
		MemberID:    memberID,
		Title:       title,
		Amount:      amount,
		Category:    category,
		ExpenseDate: expenseDate,
		PaymentType: paymentType,
		Description: description,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	actor := actorName(s.db, userID, memberID)
	publishChange(s.pub, userID, realtime.ActionCreated, realtime.KindExpense, expense.ID, expense.Title, expense.Amount, actor)

	return expense, nil
}

// GetUserExpenses retrieves a paginated, filtered list of expenses,
// most recent expense date first.
func (s *expenseService) GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	if filter.MemberID != nil {
		base = base.Where("member_id = ?", *filter.MemberID)
	}
	if filter.Category != nil {
		base = base.Where("category = ?", *filter.Category)
	}
	if filter.FromDate != nil {
		base = base.Where("expense_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("expense_date <= ?", *filter.ToDate)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Preload("Member").Order("expense_date DESC, id DESC").
		Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID returns an expense by ID if it belongs to the user.
func (s *expenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Preload("Member").Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense updates an existing expense's fields and publishes a feed event.
func (s *expenseService) UpdateExpense(
	userID, expenseID uint,
	title string,
	amount *int64,
	category *models.ExpenseCategory,
	expenseDate *time.Time,
	paymentType *models.PaymentType,
	description *string,
) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *amount
	}
	if category != nil {
		updates["category"] = *category
	}
	if expenseDate != nil {
		updates["expense_date"] = *expenseDate
	}
	if paymentType != nil {
		updates["payment_type"] = *paymentType
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	actor := actorName(s.db, userID, expense.MemberID)
	publishChange(s.pub, userID, realtime.ActionUpdated, realtime.KindExpense, expense.ID, expense.Title, expense.Amount, actor)

	return expense, nil
}

// DeleteExpense soft-deletes an expense and publishes a feed event.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	actor := actorName(s.db, userID, expense.MemberID)
	publishChange(s.pub, userID, realtime.ActionDeleted, realtime.KindExpense, expense.ID, expense.Title, expense.Amount, actor)

	return nil
}
