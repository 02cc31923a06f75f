package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "famledger/internal/errors"
	"famledger/internal/models"
	"famledger/internal/money"
	"famledger/internal/pagination"
	"famledger/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for creating an expense.
// Amount accepts a JSON number or a decimal string ("12.34").
type CreateExpenseRequest struct {
	Title       string                 `json:"title" binding:"required,min=1,max=200"`
	Amount      money.Amount           `json:"amount" binding:"required,gt=0"`
	Category    models.ExpenseCategory `json:"category" binding:"required,expense_category"`
	ExpenseDate time.Time              `json:"expense_date" binding:"required"`
	PaymentType models.PaymentType     `json:"payment_type" binding:"omitempty,payment_type"`
	Description string                 `json:"description" binding:"max=500"`
	MemberID    *uint                  `json:"member_id"`
}

// UpdateExpenseRequest represents the request payload for updating an expense.
type UpdateExpenseRequest struct {
	Title       string                  `json:"title" binding:"omitempty,min=1,max=200"`
	Amount      *money.Amount           `json:"amount" binding:"omitempty,gt=0"`
	Category    *models.ExpenseCategory `json:"category" binding:"omitempty,expense_category"`
	ExpenseDate *time.Time              `json:"expense_date"`
	PaymentType *models.PaymentType     `json:"payment_type" binding:"omitempty,payment_type"`
	Description *string                 `json:"description" binding:"omitempty,max=500"`
}

// CreateExpense handles the creation of a new expense.
// @Summary     Create an expense
// @Description Record a new expense, optionally attributed to a family member
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(
		userID, req.MemberID, req.Title, req.Amount.Cents(), req.Category,
		req.ExpenseDate, req.PaymentType, req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses handles listing expenses for the authenticated user.
// @Summary     Get expenses
// @Description Get a paginated list of expenses with optional filters
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       member_id query int    false "Filter by family member"
// @Param       category  query string false "Filter by category"
// @Param       from      query string false "Start date (RFC 3339)"
// @Param       to        query string false "End date (RFC 3339)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.expenseService.GetUserExpenses(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExpense handles retrieving a specific expense.
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} models.Expense "Expense details"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles updating an existing expense.
// @Summary     Update expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Updated expense details"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var amount *int64
	if req.Amount != nil {
		cents := req.Amount.Cents()
		amount = &cents
	}

	expense, err := h.expenseService.UpdateExpense(
		userID, expenseID, req.Title, amount, req.Category,
		req.ExpenseDate, req.PaymentType, req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles deleting an expense.
// @Summary     Delete expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// parseExpenseFilter builds an ExpenseFilter from query parameters.
func parseExpenseFilter(c *gin.Context) (services.ExpenseFilter, error) {
	var filter services.ExpenseFilter

	memberID, err := parseMemberIDQuery(c)
	if err != nil {
		return filter, err
	}
	filter.MemberID = memberID

	if v := c.Query("category"); v != "" {
		cat := models.ExpenseCategory(v)
		filter.Category = &cat
	}
	if v := c.Query("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be RFC 3339")
		}
		filter.FromDate = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be RFC 3339")
		}
		filter.ToDate = &to
	}
	return filter, nil
}
