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

// upcomingBillWindow is how far ahead the upcoming-bills endpoint looks.
const upcomingBillWindow = 7 * 24 * time.Hour

// BillHandler handles essential bill requests.
type BillHandler struct {
	billService services.BillServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer) *BillHandler {
	return &BillHandler{billService: billService}
}

// CreateBillRequest represents the request payload for creating a bill.
type CreateBillRequest struct {
	Title       string              `json:"title" binding:"required,min=1,max=200"`
	Category    models.BillCategory `json:"category" binding:"required,bill_category"`
	Amount      money.Amount        `json:"amount" binding:"required,gt=0"`
	DueDate     time.Time           `json:"due_date" binding:"required"`
	Recurrence  models.Recurrence   `json:"recurrence" binding:"required,bill_recurrence"`
	BillURL     string              `json:"bill_url" binding:"omitempty,url,max=500"`
	Description string              `json:"description" binding:"max=500"`
}

// UpdateBillRequest represents the request payload for updating a bill.
type UpdateBillRequest struct {
	Title       string        `json:"title" binding:"omitempty,min=1,max=200"`
	Amount      *money.Amount `json:"amount" binding:"omitempty,gt=0"`
	DueDate     *time.Time    `json:"due_date"`
	BillURL     *string       `json:"bill_url" binding:"omitempty,url,max=500"`
	Description *string       `json:"description" binding:"omitempty,max=500"`
}

// CreateBill handles creating a new essential bill.
// @Summary     Create a bill
// @Description Register a recurring or one-time essential bill
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBillRequest true "Bill details"
// @Success     201 {object} models.EssentialBill "Bill created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.CreateBill(
		userID, req.Title, req.Category, req.Amount.Cents(),
		req.DueDate, req.Recurrence, req.BillURL, req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

// GetBills handles listing bills for the authenticated user.
// @Summary     Get bills
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Param       status    query string false "Filter by payment status (Pending, Paid, Overdue)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.EssentialBill] "Paginated bills ordered by due date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /bills [get]
func (h *BillHandler) GetBills(c *gin.Context) {
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

	var status *models.PaymentStatus
	if v := c.Query("status"); v != "" {
		s := models.PaymentStatus(v)
		switch s {
		case models.PaymentStatusPending, models.PaymentStatusPaid, models.PaymentStatusOverdue:
			status = &s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid status"))
			return
		}
	}

	// Sweep past-due pending bills before listing so statuses are current.
	if _, err := h.billService.MarkOverdueBills(userID); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.billService.GetUserBills(userID, page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBill handles retrieving a specific bill.
// @Summary     Get bill by ID
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bill ID"
// @Success     200 {object} models.EssentialBill "Bill details"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.GetBillByID(userID, billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// UpdateBill handles updating a bill.
// @Summary     Update bill
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int               true "Bill ID"
// @Param       request body UpdateBillRequest true "Updated bill details"
// @Success     200 {object} models.EssentialBill "Updated bill"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id} [put]
func (h *BillHandler) UpdateBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var amount *int64
	if req.Amount != nil {
		cents := req.Amount.Cents()
		amount = &cents
	}

	bill, err := h.billService.UpdateBill(userID, billID, req.Title, amount, req.DueDate, req.BillURL, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// DeleteBill handles deleting a bill.
// @Summary     Delete bill
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bill ID"
// @Success     200 {object} MessageResponse "Bill deleted"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.billService.DeleteBill(userID, billID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}

// MarkBillPaid handles marking a bill as paid. Recurring bills roll forward
// to their next due date and reset to pending.
// @Summary     Mark bill paid
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bill ID"
// @Success     200 {object} models.EssentialBill "Updated bill"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id}/pay [post]
func (h *BillHandler) MarkBillPaid(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.MarkBillPaid(userID, billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// GetUpcomingBills handles listing bills due within the next week.
// @Summary     Get upcoming bills
// @Description List unpaid bills due within the next 7 days
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Upcoming bills"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /bills/upcoming [get]
func (h *BillHandler) GetUpcomingBills(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bills, err := h.billService.GetUpcomingBills(userID, upcomingBillWindow)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bills": bills})
}

// GetBillAnalytics handles the bill analytics view.
// @Summary     Get bill analytics
// @Description Monthly paid-bill totals for the trailing six months plus status counts
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.BillAnalytics "Bill analytics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /bills/analytics [get]
func (h *BillHandler) GetBillAnalytics(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	analytics, err := h.billService.GetBillAnalytics(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analytics": analytics})
}
