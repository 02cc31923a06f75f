package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"famledger/internal/models"
	"famledger/internal/sharetoken"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:       email,
		Password:    string(hash),
		DisplayName: fmt.Sprintf("Test User %d", nextID()),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestMember creates a family member with a freshly minted share token.
func CreateTestMember(t *testing.T, db *gorm.DB, userID uint) *models.FamilyMember {
	t.Helper()

	member := &models.FamilyMember{
		UserID:     userID,
		Name:       fmt.Sprintf("Test Member %d", nextID()),
		Relation:   "Sibling",
		ShareToken: sharetoken.New(),
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test member: %v", err)
	}
	return member
}

// CreateTestExpense creates an expense for the given amount (in cents) on the
// given date. A nil memberID attributes the expense to the account owner.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, memberID *uint, category models.ExpenseCategory, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		MemberID:    memberID,
		Title:       fmt.Sprintf("Test Expense %d", nextID()),
		Amount:      amount,
		Category:    category,
		ExpenseDate: date,
		PaymentType: models.PaymentTypeCard,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates an income record for the given amount (in cents).
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, memberID *uint, amount int64, date time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:   userID,
		MemberID: memberID,
		Source:   models.IncomeSourceSalary,
		Amount:   amount,
		Date:     date,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestBill creates a monthly bill with the given status and due date.
func CreateTestBill(t *testing.T, db *gorm.DB, userID uint, status models.PaymentStatus, amount int64, dueDate time.Time) *models.EssentialBill {
	t.Helper()

	bill := &models.EssentialBill{
		UserID:        userID,
		Title:         fmt.Sprintf("Test Bill %d", nextID()),
		Category:      models.BillCategoryElectricity,
		Amount:        amount,
		DueDate:       dueDate,
		PaymentStatus: status,
		Recurrence:    models.RecurrenceMonthly,
	}
	if status == models.PaymentStatusPaid {
		paid := dueDate
		bill.LastPaidDate = &paid
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}

// CreateTestBudget creates a budget for the category in the given month.
// The month is normalized to its first day.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, category models.ExpenseCategory, amount int64, month time.Time) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Month:    time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC),
		Amount:   amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
