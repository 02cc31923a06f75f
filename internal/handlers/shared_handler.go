package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"famledger/internal/services"
)

// SharedHandler serves read-only views resolved from share tokens. These
// routes are public: the token itself is the credential.
type SharedHandler struct {
	memberService    services.MemberServicer
	analyticsService services.AnalyticsServicer
}

// NewSharedHandler creates a new SharedHandler.
func NewSharedHandler(memberService services.MemberServicer, analyticsService services.AnalyticsServicer) *SharedHandler {
	return &SharedHandler{memberService: memberService, analyticsService: analyticsService}
}

// GetSharedDashboard handles the member-scoped dashboard behind a share token.
// @Summary     Get shared dashboard
// @Description Read-only dashboard scoped to the family member a share token identifies
// @Tags        shared
// @Produce     json
// @Param       token path string true "Share token"
// @Success     200 {object} services.DashboardSummary "Member-scoped dashboard"
// @Failure     404 {object} ErrorResponse "Unknown share token"
// @Router      /shared/{token}/dashboard [get]
func (h *SharedHandler) GetSharedDashboard(c *gin.Context) {
	member, err := h.memberService.ResolveShareToken(c.Param("token"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	memberID := member.ID
	summary, err := h.analyticsService.GetDashboard(member.UserID, &memberID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member": gin.H{
			"name":     member.Name,
			"relation": member.Relation,
		},
		"dashboard": summary,
	})
}
