package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "famledger/internal/errors"
	"famledger/internal/models"
)

// budgetService handles budget business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a monthly spending cap for a category. Creating a
// second budget for the same (category, month) fails with ErrBudgetExists so
// callers can surface "already exists" rather than a generic failure.
func (s *budgetService) CreateBudget(userID uint, category models.ExpenseCategory, amount int64, month time.Time) (*models.Budget, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if month.IsZero() {
		month = time.Now()
	}
	month = monthStart(month)

	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ? AND month = ?", userID, category, month).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrBudgetExists
	}

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Month:    month,
		Amount:   amount,
	}

	if err := s.db.Create(budget).Error; err != nil {
		// The unique index can still fire on a concurrent create.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrBudgetExists
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// GetMonthBudgets lists the user's budgets for one calendar month.
func (s *budgetService) GetMonthBudgets(userID uint, month time.Time) ([]models.Budget, error) {
	if month.IsZero() {
		month = time.Now()
	}
	month = monthStart(month)

	var budgets []models.Budget
	if err := s.db.Where("user_id = ? AND month = ?", userID, month).
		Order("id").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBudgetNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBudgetUsage cross-references each budgeted category against that
// month's spending. Categories without a budget are excluded even if they
// have spend.
func (s *budgetService) GetBudgetUsage(userID uint, month time.Time) ([]BudgetUsage, error) {
	if month.IsZero() {
		month = time.Now()
	}

	budgets, err := s.GetMonthBudgets(userID, month)
	if err != nil {
		return nil, err
	}

	spent, err := s.categorySpendForMonth(userID, month)
	if err != nil {
		return nil, err
	}

	return EvaluateBudgets(budgets, spent), nil
}

// GetBudgetAlert returns the single most critical budget state for a month.
// With budgets all under the warning threshold the alert reads on-track;
// with no budgets at all it is empty.
func (s *budgetService) GetBudgetAlert(userID uint, month time.Time) (*BudgetAlert, error) {
	usages, err := s.GetBudgetUsage(userID, month)
	if err != nil {
		return nil, err
	}

	if critical := CriticalAlert(usages); critical != nil {
		return &BudgetAlert{OnTrack: false, Usage: critical}, nil
	}
	return &BudgetAlert{OnTrack: len(usages) > 0}, nil
}

// categorySpendForMonth sums the month's expenses per category.
func (s *budgetService) categorySpendForMonth(userID uint, month time.Time) (map[models.ExpenseCategory]int64, error) {
	start := monthStart(month)
	end := start.AddDate(0, 1, 0)

	type row struct {
		Category models.ExpenseCategory
		Total    int64
	}
	var rows []row
	err := s.db.Model(&models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND expense_date >= ? AND expense_date < ?", userID, start, end).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spent := make(map[models.ExpenseCategory]int64, len(rows))
	for _, r := range rows {
		spent[r.Category] = r.Total
	}
	return spent, nil
}
