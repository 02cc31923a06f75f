package services

import (
	"testing"
	"time"

	"famledger/internal/models"
	"famledger/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, models.ExpenseCategoryFood, 50000, month)
		testutil.AssertNoError(t, err)

		if budget.ID == 0 {
			t.Fatal("expected non-zero budget ID")
		}
		if budget.Amount != 50000 {
			t.Errorf("expected amount 50000, got %d", budget.Amount)
		}
		if budget.Category != models.ExpenseCategoryFood {
			t.Errorf("expected category Food, got %s", budget.Category)
		}
	})

	t.Run("month_normalized_to_first_day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		midMonth := time.Date(2026, 8, 17, 14, 30, 0, 0, time.UTC)
		budget, err := svc.CreateBudget(user.ID, models.ExpenseCategoryFood, 50000, midMonth)
		testutil.AssertNoError(t, err)

		if budget.Month.Day() != 1 {
			t.Errorf("expected month day 1, got %d", budget.Month.Day())
		}
		if budget.Month.Hour() != 0 {
			t.Errorf("expected midnight, got hour %d", budget.Month.Hour())
		}
	})

	t.Run("duplicate_category_month_conflicts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, models.ExpenseCategoryFood, 50000, month)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateBudget(user.ID, models.ExpenseCategoryFood, 70000, month)
		testutil.AssertAppError(t, err, "BUDGET_EXISTS")
	})

	t.Run("same_category_different_months_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, models.ExpenseCategoryFood, 50000, month)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateBudget(user.ID, models.ExpenseCategoryFood, 50000, month.AddDate(0, 1, 0))
		testutil.AssertNoError(t, err)
	})

	t.Run("same_slot_different_users_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user1.ID, models.ExpenseCategoryFood, 50000, month)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateBudget(user2.ID, models.ExpenseCategoryFood, 50000, month)
		testutil.AssertNoError(t, err)
	})

	t.Run("non_positive_amount_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, models.ExpenseCategoryFood, 0, month)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetMonthBudgets(t *testing.T) {
	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns_only_that_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, models.ExpenseCategoryFood, 50000, month)
		testutil.CreateTestBudget(t, db, user.ID, models.ExpenseCategoryTransport, 20000, month)
		testutil.CreateTestBudget(t, db, user.ID, models.ExpenseCategoryFood, 50000, month.AddDate(0, 1, 0))

		budgets, err := svc.GetMonthBudgets(user.ID, month)
		testutil.AssertNoError(t, err)

		if len(budgets) != 2 {
			t.Errorf("expected 2 budgets, got %d", len(budgets))
		}
	})

	t.Run("other_users_budgets_invisible", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user2.ID, models.ExpenseCategoryFood, 50000, month)

		budgets, err := svc.GetMonthBudgets(user1.ID, month)
		testutil.AssertNoError(t, err)

		if len(budgets) != 0 {
			t.Errorf("expected no budgets, got %d", len(budgets))
		}
	})
}

func TestDeleteBudget(t *testing.T) {
	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("deletes_own_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, models.ExpenseCategoryFood, 50000, month)

		testutil.AssertNoError(t, svc.DeleteBudget(user.ID, budget.ID))

		budgets, err := svc.GetMonthBudgets(user.ID, month)
		testutil.AssertNoError(t, err)
		if len(budgets) != 0 {
			t.Errorf("expected budget gone, got %d", len(budgets))
		}
	})

	t.Run("cannot_delete_other_users_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user2.ID, models.ExpenseCategoryFood, 50000, month)

		err := svc.DeleteBudget(user1.ID, budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("missing_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteBudget(user.ID, 9999)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestGetBudgetUsage(t *testing.T) {
	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	inMonth := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	t.Run("cross_references_spending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, models.ExpenseCategoryFood, 100000, month)
		testutil.CreateTestExpense(t, db, user.ID, nil, models.ExpenseCategoryFood, 60000, inMonth)
		testutil.CreateTestExpense(t, db, user.ID, nil, models.ExpenseCategoryFood, 35000, inMonth)

		usages, err := svc.GetBudgetUsage(user.ID, month)
		testutil.AssertNoError(t, err)

		if len(usages) != 1 {
			t.Fatalf("expected 1 usage, got %d", len(usages))
		}
		if usages[0].Spent != 95000 {
			t.Errorf("expected spent 95000, got %d", usages[0].Spent)
		}
		if usages[0].Percentage != 95 {
			t.Errorf("expected 95%%, got %f", usages[0].Percentage)
		}
		if usages[0].Status != BudgetStatusWarning {
			t.Errorf("expected warning, got %s", usages[0].Status)
		}
	})

	t.Run("spending_outside_month_ignored", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, models.ExpenseCategoryFood, 100000, month)
		testutil.CreateTestExpense(t, db, user.ID, nil, models.ExpenseCategoryFood, 99999,
			time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC))

		usages, err := svc.GetBudgetUsage(user.ID, month)
		testutil.AssertNoError(t, err)

		if usages[0].Spent != 0 {
			t.Errorf("expected no spend counted, got %d", usages[0].Spent)
		}
	})

	t.Run("unbudgeted_category_excluded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, models.ExpenseCategoryFood, 100000, month)
		testutil.CreateTestExpense(t, db, user.ID, nil, models.ExpenseCategoryTravel, 500000, inMonth)

		usages, err := svc.GetBudgetUsage(user.ID, month)
		testutil.AssertNoError(t, err)

		if len(usages) != 1 || usages[0].Category != models.ExpenseCategoryFood {
			t.Errorf("expected Food only, got %+v", usages)
		}
	})
}

func TestGetBudgetAlert(t *testing.T) {
	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	inMonth := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	t.Run("no_budgets_is_empty_alert", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		alert, err := svc.GetBudgetAlert(user.ID, month)
		testutil.AssertNoError(t, err)

		if alert.OnTrack {
			t.Error("expected empty alert, not on-track")
		}
		if alert.Usage != nil {
			t.Errorf("expected nil usage, got %+v", alert.Usage)
		}
	})

	t.Run("under_threshold_reads_on_track", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, models.ExpenseCategoryFood, 100000, month)
		testutil.CreateTestExpense(t, db, user.ID, nil, models.ExpenseCategoryFood, 40000, inMonth)

		alert, err := svc.GetBudgetAlert(user.ID, month)
		testutil.AssertNoError(t, err)

		if !alert.OnTrack {
			t.Error("expected on-track alert")
		}
	})

	t.Run("overspent_budget_surfaces", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, models.ExpenseCategoryFood, 100000, month)
		testutil.CreateTestBudget(t, db, user.ID, models.ExpenseCategoryTransport, 100000, month)
		testutil.CreateTestExpense(t, db, user.ID, nil, models.ExpenseCategoryFood, 85000, inMonth)
		testutil.CreateTestExpense(t, db, user.ID, nil, models.ExpenseCategoryTransport, 110000, inMonth)

		alert, err := svc.GetBudgetAlert(user.ID, month)
		testutil.AssertNoError(t, err)

		if alert.OnTrack {
			t.Fatal("expected alert, got on-track")
		}
		if alert.Usage == nil {
			t.Fatal("expected usage in alert")
		}
		if alert.Usage.Category != models.ExpenseCategoryTransport {
			t.Errorf("expected danger category Transport, got %s", alert.Usage.Category)
		}
		if alert.Usage.Status != BudgetStatusDanger {
			t.Errorf("expected danger, got %s", alert.Usage.Status)
		}
	})
}
