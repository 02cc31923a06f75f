package services

import (
	"time"

	"famledger/internal/models"
	"famledger/internal/pagination"
	"famledger/internal/realtime"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, displayName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
	DeleteAccount(userID uint) error
}

// MemberServicer defines the contract for family member business logic.
type MemberServicer interface {
	CreateMember(userID uint, name, relation string) (*models.FamilyMember, error)
	GetUserMembers(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.FamilyMember], error)
	GetMemberByID(userID, memberID uint) (*models.FamilyMember, error)
	UpdateMember(userID, memberID uint, name, relation string) (*models.FamilyMember, error)
	DeleteMember(userID, memberID uint) error
	ResolveShareToken(token string) (*models.FamilyMember, error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	MemberID *uint
	Category *models.ExpenseCategory
	FromDate *time.Time
	ToDate   *time.Time
}

// ExpenseServicer defines the contract for expense business logic.
type ExpenseServicer interface {
	CreateExpense(userID uint, memberID *uint, title string, amount int64, category models.ExpenseCategory, expenseDate time.Time, paymentType models.PaymentType, description string) (*models.Expense, error)
	GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, title string, amount *int64, category *models.ExpenseCategory, expenseDate *time.Time, paymentType *models.PaymentType, description *string) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
}

// IncomeFilter holds optional filter parameters for listing income records.
type IncomeFilter struct {
	MemberID *uint
	Source   *models.IncomeSource
	FromDate *time.Time
	ToDate   *time.Time
}

// IncomeServicer defines the contract for income business logic.
type IncomeServicer interface {
	CreateIncome(userID uint, memberID *uint, source models.IncomeSource, amount int64, date time.Time, description string) (*models.Income, error)
	GetUserIncomes(userID uint, page pagination.PageRequest, filter IncomeFilter) (*pagination.PageResponse[models.Income], error)
	GetIncomeByID(userID, incomeID uint) (*models.Income, error)
	UpdateIncome(userID, incomeID uint, source *models.IncomeSource, amount *int64, date *time.Time, description *string) (*models.Income, error)
	DeleteIncome(userID, incomeID uint) error
}

// BillAnalytics contains aggregated bill data for the analytics view.
type BillAnalytics struct {
	MonthlyTotals []MonthlyPoint `json:"monthly_totals"`
	PendingCount  int64          `json:"pending_count"`
	PaidCount     int64          `json:"paid_count"`
	OverdueCount  int64          `json:"overdue_count"`
}

// BillServicer defines the contract for essential bill business logic.
type BillServicer interface {
	CreateBill(userID uint, title string, category models.BillCategory, amount int64, dueDate time.Time, recurrence models.Recurrence, billURL, description string) (*models.EssentialBill, error)
	GetUserBills(userID uint, page pagination.PageRequest, status *models.PaymentStatus) (*pagination.PageResponse[models.EssentialBill], error)
	GetBillByID(userID, billID uint) (*models.EssentialBill, error)
	UpdateBill(userID, billID uint, title string, amount *int64, dueDate *time.Time, billURL, description *string) (*models.EssentialBill, error)
	DeleteBill(userID, billID uint) error
	MarkBillPaid(userID, billID uint) (*models.EssentialBill, error)
	MarkOverdueBills(userID uint) (int64, error)
	GetUpcomingBills(userID uint, within time.Duration) ([]models.EssentialBill, error)
	GetBillAnalytics(userID uint) (*BillAnalytics, error)
}

// BudgetStatus classifies budget utilization.
type BudgetStatus string

const (
	BudgetStatusOK      BudgetStatus = "ok"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusDanger  BudgetStatus = "danger"
)

// BudgetUsage contains spending vs budget data for one category in one month.
type BudgetUsage struct {
	Category   models.ExpenseCategory `json:"category"`
	Spent      int64                  `json:"spent"`
	Budgeted   int64                  `json:"budgeted"`
	Percentage float64                `json:"percentage"`
	Status     BudgetStatus           `json:"status"`
}

// BudgetAlert is the single most actionable budget state for a month.
// When no budget crosses the warning threshold, OnTrack is true and Usage is
// nil; when no budgets exist at all, both are zero-valued.
type BudgetAlert struct {
	OnTrack bool         `json:"on_track"`
	Usage   *BudgetUsage `json:"usage,omitempty"`
}

// BudgetServicer defines the contract for budget business logic.
type BudgetServicer interface {
	CreateBudget(userID uint, category models.ExpenseCategory, amount int64, month time.Time) (*models.Budget, error)
	GetMonthBudgets(userID uint, month time.Time) ([]models.Budget, error)
	DeleteBudget(userID, budgetID uint) error
	GetBudgetUsage(userID uint, month time.Time) ([]BudgetUsage, error)
	GetBudgetAlert(userID uint, month time.Time) (*BudgetAlert, error)
}

// MonthlyPoint is one month's total in a time series.
type MonthlyPoint struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

// CategoryTotal is one category's summed spending.
type CategoryTotal struct {
	Category models.ExpenseCategory `json:"category"`
	Total    int64                  `json:"total"`
}

// MonthComparison compares current-month spending against the previous
// calendar month. Both windows are computed from wall-clock time at query
// evaluation.
type MonthComparison struct {
	CurrentMonth  int64   `json:"current_month"`
	PreviousMonth int64   `json:"previous_month"`
	Difference    int64   `json:"difference"`
	ChangePercent float64 `json:"change_percent"`
}

// DashboardSummary contains the aggregated metrics for the dashboard view.
type DashboardSummary struct {
	TotalIncome      int64           `json:"total_income"`
	TotalExpenses    int64           `json:"total_expenses"`
	RemainingBalance int64           `json:"remaining_balance"`
	MonthlyExpenses  []MonthlyPoint  `json:"monthly_expenses"`
	CategoryExpenses []CategoryTotal `json:"category_expenses"`
	Comparison       MonthComparison `json:"comparison"`
	TopCategories    []CategoryTotal `json:"top_categories"`
}

// AnalyticsServicer defines the contract for dashboard aggregation.
type AnalyticsServicer interface {
	GetDashboard(userID uint, memberID *uint) (*DashboardSummary, error)
}

// MemberStat is one participant's current-month totals. A nil MemberID
// identifies the account owner.
type MemberStat struct {
	MemberID     *uint  `json:"member_id,omitempty"`
	Name         string `json:"name"`
	NetSavings   int64  `json:"net_savings"`
	ExpenseCount int    `json:"expense_count"`
	IncomeCount  int    `json:"income_count"`
}

// Leaderboard contains per-participant stats and the two derived rankings.
type Leaderboard struct {
	Stats       []MemberStat `json:"stats"`
	TopSavers   []MemberStat `json:"top_savers"`
	TopTrackers []MemberStat `json:"top_trackers"`
}

// LeaderboardServicer defines the contract for family leaderboard aggregation.
type LeaderboardServicer interface {
	GetLeaderboard(userID uint) (*Leaderboard, error)
}

// ActivityServicer defines the contract for the activity feed.
type ActivityServicer interface {
	BuildFeed(userID uint) *realtime.Feed
	Subscribe(userID uint) (<-chan realtime.ChangeEvent, func())
}
