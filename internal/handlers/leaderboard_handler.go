package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"famledger/internal/services"
)

// LeaderboardHandler handles family leaderboard requests.
type LeaderboardHandler struct {
	leaderboardService services.LeaderboardServicer
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboardService services.LeaderboardServicer) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard handles the current-month family leaderboard.
// @Summary     Get leaderboard
// @Description Per-participant current-month stats with top savers and top trackers
// @Tags        leaderboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Leaderboard "Leaderboard"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	board, err := h.leaderboardService.GetLeaderboard(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": board})
}
