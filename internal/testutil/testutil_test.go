package testutil_test

import (
	"testing"
	"time"

	"famledger/internal/errors"
	"famledger/internal/models"
	"famledger/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "family_members", "expenses", "incomes", "essential_bills", "budgets"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	now := time.Now()

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}

	member := testutil.CreateTestMember(t, db, user.ID)
	if member.ShareToken == "" {
		t.Error("member should carry a share token")
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, &member.ID, models.ExpenseCategoryFood, 4500, now)
	if expense.Amount != 4500 {
		t.Errorf("expected amount 4500, got %d", expense.Amount)
	}

	income := testutil.CreateTestIncome(t, db, user.ID, nil, 300000, now)
	if income.Source != models.IncomeSourceSalary {
		t.Errorf("expected salary income, got %s", income.Source)
	}

	bill := testutil.CreateTestBill(t, db, user.ID, models.PaymentStatusPaid, 12000, now)
	if bill.LastPaidDate == nil {
		t.Error("paid bill should carry a last paid date")
	}

	budget := testutil.CreateTestBudget(t, db, user.ID, models.ExpenseCategoryFood, 100000, now)
	if budget.Month.Day() != 1 {
		t.Errorf("expected budget month normalized to first day, got %v", budget.Month)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrExpenseNotFound, "custom message")
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
