package handlers

import (
	"net/http"

	"tablebot/utils"

	"github.com/gin-gonic/gin"
)

// AdminStatsHandler summarizes bookings, live sessions, and slot holds.
func (hb *HandlerBundle) AdminStatsHandler(c *gin.Context) {
	stats, err := hb.Reservations.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Stats failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservations":   stats,
		"activeSessions": hb.Sessions.ActiveCount(),
		"lockedSlots":    hb.Locker.LockedCount(),
		"confirmedSlots": hb.Locker.ConfirmedCount(),
	})
}

// AdminSessionsHandler lists every live conversation session.
func (hb *HandlerBundle) AdminSessionsHandler(c *gin.Context) {
	sessions := hb.Sessions.Snapshot()
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

// AdminClearSessionHandler drops one user's session and releases their slot
// hold. Used when a conversation gets stuck.
func (hb *HandlerBundle) AdminClearSessionHandler(c *gin.Context) {
	userID := c.Param("user_id")
	existed := hb.Sessions.Clear(userID)
	if !existed {
		utils.JSONError(c, http.StatusNotFound, "No session for user", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "cleared": true})
}
