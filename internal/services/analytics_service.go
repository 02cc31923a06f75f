package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "famledger/internal/errors"
	"famledger/internal/models"
)

// analyticsService aggregates raw records into dashboard metrics.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// GetDashboard fetches the user's expense and income records (optionally
// scoped to one family member) and derives the dashboard summary. A failed
// fetch surfaces as an error; it is never converted to zeroed aggregates
// that could read as "no spending". An account with zero records yields zero
// totals and empty series, which is a legitimate state, not a failure.
func (s *analyticsService) GetDashboard(userID uint, memberID *uint) (*DashboardSummary, error) {
	expenseQuery := s.db.Where("user_id = ?", userID)
	incomeQuery := s.db.Where("user_id = ?", userID)
	if memberID != nil {
		expenseQuery = expenseQuery.Where("member_id = ?", *memberID)
		incomeQuery = incomeQuery.Where("member_id = ?", *memberID)
	}

	var expenses []models.Expense
	if err := expenseQuery.Order("expense_date ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := incomeQuery.Order("date ASC").Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totalIncome := SumIncomeAmounts(incomes)
	totalExpenses := SumExpenseAmounts(expenses)
	categoryTotals := CategoryExpenseTotals(expenses)

	return &DashboardSummary{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		RemainingBalance: totalIncome - totalExpenses,
		MonthlyExpenses:  MonthlyExpenseSeries(expenses),
		CategoryExpenses: categoryTotals,
		Comparison:       ComparisonAt(expenses, time.Now()),
		TopCategories:    TopCategories(categoryTotals, topCategoryCount),
	}, nil
}
