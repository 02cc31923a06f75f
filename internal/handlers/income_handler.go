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

// IncomeHandler handles income-related requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeRequest represents the request payload for recording income.
// Amount accepts a JSON number or a decimal string ("12.34").
type CreateIncomeRequest struct {
	Source      models.IncomeSource `json:"source" binding:"required,income_source"`
	Amount      money.Amount        `json:"amount" binding:"required,gt=0"`
	Date        time.Time           `json:"date" binding:"required"`
	Description string              `json:"description" binding:"max=500"`
	MemberID    *uint               `json:"member_id"`
}

// UpdateIncomeRequest represents the request payload for updating income.
type UpdateIncomeRequest struct {
	Source      *models.IncomeSource `json:"source" binding:"omitempty,income_source"`
	Amount      *money.Amount        `json:"amount" binding:"omitempty,gt=0"`
	Date        *time.Time           `json:"date"`
	Description *string              `json:"description" binding:"omitempty,max=500"`
}

// CreateIncome handles recording a new income entry.
// @Summary     Record income
// @Description Record a new income entry, optionally attributed to a family member
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIncomeRequest true "Income details"
// @Success     201 {object} models.Income "Income recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Router      /income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.incomeService.CreateIncome(
		userID, req.MemberID, req.Source, req.Amount.Cents(), req.Date, req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"income": income})
}

// GetIncomes handles listing income records for the authenticated user.
// @Summary     Get income records
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       member_id query int    false "Filter by family member"
// @Param       source    query string false "Filter by source"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Income] "Paginated income records"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income [get]
func (h *IncomeHandler) GetIncomes(c *gin.Context) {
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

	var filter services.IncomeFilter
	memberID, err := parseMemberIDQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	filter.MemberID = memberID
	if v := c.Query("source"); v != "" {
		src := models.IncomeSource(v)
		filter.Source = &src
	}

	result, err := h.incomeService.GetUserIncomes(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetIncome handles retrieving a specific income record.
// @Summary     Get income by ID
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Income ID"
// @Success     200 {object} models.Income "Income details"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Router      /income/{id} [get]
func (h *IncomeHandler) GetIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.GetIncomeByID(userID, incomeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// UpdateIncome handles updating an existing income record.
// @Summary     Update income
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "Income ID"
// @Param       request body UpdateIncomeRequest true "Updated income details"
// @Success     200 {object} models.Income "Updated income"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Router      /income/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var amount *int64
	if req.Amount != nil {
		cents := req.Amount.Cents()
		amount = &cents
	}

	income, err := h.incomeService.UpdateIncome(userID, incomeID, req.Source, amount, req.Date, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// DeleteIncome handles deleting an income record.
// @Summary     Delete income
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Income ID"
// @Success     200 {object} MessageResponse "Income deleted"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Router      /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncome(userID, incomeID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}
