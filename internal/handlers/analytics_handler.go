package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"famledger/internal/services"
)

// AnalyticsHandler handles dashboard aggregation requests.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetDashboard handles the dashboard summary view.
// @Summary     Get dashboard
// @Description Aggregated totals, monthly series, category breakdown, month-over-month comparison, and top categories. Optionally scoped to one family member.
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       member_id query int false "Scope to one family member"
// @Success     200 {object} services.DashboardSummary "Dashboard summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	memberID, err := parseMemberIDQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.GetDashboard(userID, memberID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": summary})
}
