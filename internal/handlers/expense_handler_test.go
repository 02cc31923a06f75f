package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "famledger/internal/errors"
	"famledger/internal/models"
	"famledger/internal/pagination"
	"famledger/internal/services"
	"famledger/internal/validator"
)

// --- mock expense service ---

type mockExpenseService struct {
	createExpenseFn   func(userID uint, memberID *uint, title string, amount int64, category models.ExpenseCategory, expenseDate time.Time, paymentType models.PaymentType, description string) (*models.Expense, error)
	getUserExpensesFn func(userID uint, page pagination.PageRequest, filter services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	getExpenseByIDFn  func(userID, expenseID uint) (*models.Expense, error)
	updateExpenseFn   func(userID, expenseID uint, title string, amount *int64, category *models.ExpenseCategory, expenseDate *time.Time, paymentType *models.PaymentType, description *string) (*models.Expense, error)
	deleteExpenseFn   func(userID, expenseID uint) error
}

func (m *mockExpenseService) CreateExpense(userID uint, memberID *uint, title string, amount int64, category models.ExpenseCategory, expenseDate time.Time, paymentType models.PaymentType, description string) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(userID, memberID, title, amount, category, expenseDate, paymentType, description)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) GetUserExpenses(userID uint, page pagination.PageRequest, filter services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	if m.getUserExpensesFn != nil {
		return m.getUserExpensesFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(userID, expenseID)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) UpdateExpense(userID, expenseID uint, title string, amount *int64, category *models.ExpenseCategory, expenseDate *time.Time, paymentType *models.PaymentType, description *string) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(userID, expenseID, title, amount, category, expenseDate, paymentType, description)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID uint) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(userID, expenseID)
	}
	return nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectUserID(uid uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/expenses", handler.CreateExpense)
	auth.GET("/expenses", handler.GetExpenses)
	auth.GET("/expenses/:id", handler.GetExpense)
	auth.PUT("/expenses/:id", handler.UpdateExpense)
	auth.DELETE("/expenses/:id", handler.DeleteExpense)
	return r
}

// --- tests ---

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		expSvc := &mockExpenseService{
			createExpenseFn: func(userID uint, _ *uint, title string, amount int64, category models.ExpenseCategory, _ time.Time, _ models.PaymentType, _ string) (*models.Expense, error) {
				return &models.Expense{
					Base:     models.Base{ID: 1},
					UserID:   userID,
					Title:    title,
					Amount:   amount,
					Category: category,
				}, nil
			},
		}
		handler := NewExpenseHandler(expSvc)
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"title":"Groceries","amount":45.99,"category":"Food","expense_date":"2026-08-15T00:00:00Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["expense"].(map[string]interface{})
		if expense["amount"].(float64) != 4599 {
			t.Errorf("expected amount 4599 cents, got %v", expense["amount"])
		}
	})

	t.Run("accepts string amounts", func(t *testing.T) {
		var capturedAmount int64
		expSvc := &mockExpenseService{
			createExpenseFn: func(_ uint, _ *uint, _ string, amount int64, _ models.ExpenseCategory, _ time.Time, _ models.PaymentType, _ string) (*models.Expense, error) {
				capturedAmount = amount
				return &models.Expense{}, nil
			},
		}
		handler := NewExpenseHandler(expSvc)
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"title":"Groceries","amount":"45.99","category":"Food","expense_date":"2026-08-15T00:00:00Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if capturedAmount != 4599 {
			t.Errorf("expected 4599 cents from string amount, got %d", capturedAmount)
		}
	})

	t.Run("returns 400 on missing title", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"amount":45.99,"category":"Food","expense_date":"2026-08-15T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid category", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"title":"Groceries","amount":45.99,"category":"Gambling","expense_date":"2026-08-15T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"title":"Groceries","amount":-5,"category":"Food","expense_date":"2026-08-15T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when member not found", func(t *testing.T) {
		expSvc := &mockExpenseService{
			createExpenseFn: func(_ uint, _ *uint, _ string, _ int64, _ models.ExpenseCategory, _ time.Time, _ models.PaymentType, _ string) (*models.Expense, error) {
				return nil, apperrors.ErrMemberNotFound
			},
		}
		handler := NewExpenseHandler(expSvc)
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"title":"Groceries","amount":45.99,"category":"Food","expense_date":"2026-08-15T00:00:00Z","member_id":999}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MEMBER_NOT_FOUND")
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{})
		r := gin.New()
		r.POST("/expenses", handler.CreateExpense)

		rec := doRequest(r, "POST", "/expenses",
			`{"title":"Groceries","amount":45.99,"category":"Food","expense_date":"2026-08-15T00:00:00Z"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_GetExpenses(t *testing.T) {
	t.Run("returns 200 with paginated expenses", func(t *testing.T) {
		expSvc := &mockExpenseService{
			getUserExpensesFn: func(_ uint, _ pagination.PageRequest, _ services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
				resp := pagination.NewPageResponse([]models.Expense{
					{Base: models.Base{ID: 1}, Title: "Groceries", Amount: 4599, Category: models.ExpenseCategoryFood},
				}, 1, 20, 1)
				return &resp, nil
			},
		}
		handler := NewExpenseHandler(expSvc)
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 1 {
			t.Errorf("expected 1 expense, got %d", len(data))
		}
	})

	t.Run("passes filter params to service", func(t *testing.T) {
		var capturedFilter services.ExpenseFilter
		expSvc := &mockExpenseService{
			getUserExpensesFn: func(_ uint, _ pagination.PageRequest, filter services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
				capturedFilter = filter
				resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewExpenseHandler(expSvc)
		r := setupExpenseRouter(handler)

		doRequest(r, "GET", "/expenses?member_id=3&category=Food", "")

		if capturedFilter.MemberID == nil || *capturedFilter.MemberID != 3 {
			t.Errorf("expected member_id=3 filter, got %v", capturedFilter.MemberID)
		}
		if capturedFilter.Category == nil || *capturedFilter.Category != models.ExpenseCategoryFood {
			t.Errorf("expected category=Food filter, got %v", capturedFilter.Category)
		}
	})

	t.Run("returns 400 on invalid date format", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses?from=not-a-date", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid member_id", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses?member_id=abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_UpdateExpense(t *testing.T) {
	t.Run("returns 200 and converts amount to cents", func(t *testing.T) {
		var capturedAmount *int64
		expSvc := &mockExpenseService{
			updateExpenseFn: func(_, expenseID uint, _ string, amount *int64, _ *models.ExpenseCategory, _ *time.Time, _ *models.PaymentType, _ *string) (*models.Expense, error) {
				capturedAmount = amount
				return &models.Expense{Base: models.Base{ID: expenseID}}, nil
			},
		}
		handler := NewExpenseHandler(expSvc)
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/1", `{"amount":"12.50"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if capturedAmount == nil || *capturedAmount != 1250 {
			t.Errorf("expected 1250 cents, got %v", capturedAmount)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		expSvc := &mockExpenseService{
			updateExpenseFn: func(_, _ uint, _ string, _ *int64, _ *models.ExpenseCategory, _ *time.Time, _ *models.PaymentType, _ *string) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(expSvc)
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/999", `{"title":"Renamed"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid ID", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/abc", `{"title":"Renamed"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "DELETE", "/expenses/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message"] != "Expense deleted successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		expSvc := &mockExpenseService{
			deleteExpenseFn: func(_, _ uint) error {
				return apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(expSvc)
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "DELETE", "/expenses/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
