package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "famledger/internal/errors"
	"famledger/internal/models"
	"famledger/internal/money"
	"famledger/internal/services"
)

// BudgetHandler handles monthly budget requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the request payload for setting a budget.
type CreateBudgetRequest struct {
	Category models.ExpenseCategory `json:"category" binding:"required,expense_category"`
	Amount   money.Amount           `json:"amount" binding:"required,gt=0"`
	Month    time.Time              `json:"month" binding:"required"`
}

// CreateBudget handles setting a category budget for a month.
// @Summary     Create a budget
// @Description Set a spending limit for a category in a given month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Budget already exists for this category and month"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.CreateBudget(userID, req.Category, req.Amount.Cents(), req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing budgets for a month.
// @Summary     Get budgets
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM, defaults to current)"
// @Success     200 {object} MessageResponse "Budgets for the month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := parseMonthQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetMonthBudgets(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// DeleteBudget handles removing a budget.
// @Summary     Delete budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}

// GetBudgetUsage handles the spending-vs-budget breakdown for a month.
// @Summary     Get budget usage
// @Description Spending against each budgeted category with status classification
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM, defaults to current)"
// @Success     200 {object} MessageResponse "Usage per budgeted category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets/usage [get]
func (h *BudgetHandler) GetBudgetUsage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := parseMonthQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	usage, err := h.budgetService.GetBudgetUsage(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"usage": usage})
}

// GetBudgetAlert handles the single most critical budget alert for a month.
// @Summary     Get budget alert
// @Description The most overspent budget at or past the warning threshold, if any
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM, defaults to current)"
// @Success     200 {object} services.BudgetAlert "Alert state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets/alert [get]
func (h *BudgetHandler) GetBudgetAlert(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := parseMonthQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	alert, err := h.budgetService.GetBudgetAlert(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alert": alert})
}
