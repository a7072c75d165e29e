package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"parking-backend/middleware"
	"parking-backend/services"
	"parking-backend/utils"
)

// WorkspaceController serves the occupancy grid and the client card.
type WorkspaceController struct {
	Occupancy *services.OccupancyService
	Bookings  *services.BookingService
}

func NewWorkspaceController(occupancy *services.OccupancyService, bookings *services.BookingService) *WorkspaceController {
	return &WorkspaceController{Occupancy: occupancy, Bookings: bookings}
}

// parkingFilter reads the optional ?parking_id= query parameter.
func parkingFilter(c *gin.Context) (*uint, bool) {
	raw := c.Query("parking_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, false
	}
	parkingID := uint(id)
	return &parkingID, true
}

// GetGrid builds the occupancy grid for the current year plus ?year_offset=.
func (ctrl *WorkspaceController) GetGrid(c *gin.Context) {
	yearOffset := 0
	if raw := c.Query("year_offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "year_offset must be an integer")
			return
		}
		yearOffset = v
	}

	parkingID, ok := parkingFilter(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "parking_id must be a positive integer")
		return
	}

	year := time.Now().Year() + yearOffset
	grid, err := ctrl.Occupancy.BuildGrid(year, parkingID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, grid)
}

// GetClientCard returns the edit-form prefill for a client.
func (ctrl *WorkspaceController) GetClientCard(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 64)
	if err != nil || clientID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid client id")
		return
	}

	card, err := ctrl.Bookings.LoadClientCard(uint(clientID))
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, card)
}

// SaveClientCard saves the client-card form: booking upsert plus optional
// payment, atomically.
func (ctrl *WorkspaceController) SaveClientCard(c *gin.Context) {
	var input services.ClientCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	booking, err := ctrl.Bookings.SaveClientCard(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound), errors.Is(err, services.ErrSpotNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrSpotRequired),
			errors.Is(err, services.ErrStartRequired),
			errors.Is(err, services.ErrEndRequired),
			errors.Is(err, services.ErrRentRequired),
			errors.Is(err, services.ErrClientRequired),
			errors.Is(err, services.ErrStartNotBefore),
			errors.Is(err, utils.ErrInvalidDate):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if actor, ok := c.Get(middleware.ContextUserID); ok {
		log.Printf("client card saved: booking %d by user %v", booking.ID, actor)
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
