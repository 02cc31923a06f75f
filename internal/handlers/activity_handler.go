package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"famledger/internal/services"
)

// heartbeatInterval keeps idle SSE connections alive through proxies.
const heartbeatInterval = 30 * time.Second

// ActivityHandler handles the live activity feed.
type ActivityHandler struct {
	activityService services.ActivityServicer
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService services.ActivityServicer) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetActivity handles a one-shot snapshot of the activity feed.
// @Summary     Get activity feed
// @Description The ten most recent expense and income events, newest first
// @Tags        activity
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Feed snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /activity [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	feed := h.activityService.BuildFeed(userID)
	c.JSON(http.StatusOK, gin.H{"activity": feed.Items()})
}

// StreamActivity handles the server-sent events activity stream. The client
// receives the current feed snapshot immediately, then a fresh snapshot each
// time a change event lands. Subscription happens before the historical seed
// so no event can fall between them.
// @Summary     Stream activity feed
// @Description Server-sent events stream of activity feed snapshots
// @Tags        activity
// @Produce     text/event-stream
// @Security    BearerAuth
// @Success     200 {string} string "SSE stream"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /activity/stream [get]
func (h *ActivityHandler) StreamActivity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	events, cancel := h.activityService.Subscribe(userID)
	defer cancel()

	feed := h.activityService.BuildFeed(userID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.SSEvent("activity", feed.Items())
	c.Writer.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			if feed.Apply(ev) {
				c.SSEvent("activity", feed.Items())
			}
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}
	})
}
