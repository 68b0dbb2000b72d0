package handlers

import (
	"net/http"

	"tablebot/models"
	"tablebot/utils"

	"github.com/gin-gonic/gin"
)

// GetReservationHandler returns one reservation by its public id.
func (hb *HandlerBundle) GetReservationHandler(c *gin.Context) {
	id := c.Param("id")

	res, err := hb.Reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Lookup failed", err.Error())
		return
	}
	if res == nil {
		utils.JSONError(c, http.StatusNotFound, "Reservation not found", id)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetUserReservationsHandler lists a user's reservations, newest first.
func (hb *HandlerBundle) GetUserReservationsHandler(c *gin.Context) {
	userID := c.Param("user_id")

	list, err := hb.Reservations.UserReservations(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list, "count": len(list)})
}

// SearchReservationsHandler filters reservations by name, date, and status.
func (hb *HandlerBundle) SearchReservationsHandler(c *gin.Context) {
	filter := models.ReservationSearch{
		Name:   c.Query("name"),
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}

	list, err := hb.Reservations.Search(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list, "count": len(list)})
}

// GetReservationsByDateHandler lists reservations for a DD-MM-YYYY date.
func (hb *HandlerBundle) GetReservationsByDateHandler(c *gin.Context) {
	date := c.Param("date")

	list, err := hb.Reservations.ByDate(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "reservations": list, "count": len(list)})
}

// CancelReservationHandler cancels a reservation owned by the given user.
// POST /reservations/:id/cancel with user_id as form or query parameter.
func (hb *HandlerBundle) CancelReservationHandler(c *gin.Context) {
	id := c.Param("id")
	userID := c.PostForm("user_id")
	if userID == "" {
		userID = c.Query("user_id")
	}
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing user", "user_id query parameter is required")
		return
	}

	ok, err := hb.Reservations.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Cancel failed", err.Error())
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Reservation not found for this user", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservationId": id, "status": models.ReservationCancelled})
}
