package handlers

import (
	"net/http"

	"tablebot/utils"

	"github.com/gin-gonic/gin"
)

// GetAvailabilityHandler reports whether a (date, time) slot is free and
// which alternative times remain on that date.
// GET /availability?date=25-12-2025&time=7:00%20PM&user_id=...
func (hb *HandlerBundle) GetAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	slotTime := c.Query("time")
	userID := c.Query("user_id")

	if date == "" || slotTime == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing parameters", "date and time query parameters are required")
		return
	}

	available, status := hb.Locker.CheckAvailability(date, slotTime, userID)
	c.JSON(http.StatusOK, gin.H{
		"date":         date,
		"time":         slotTime,
		"available":    available,
		"status":       status,
		"alternatives": hb.Locker.AlternativeTimes(date, slotTime),
	})
}
