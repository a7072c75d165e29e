package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-backend/services"
	"parking-backend/utils"
)

// ParkingController serves lot and spot CRUD.
type ParkingController struct {
	Parkings *services.ParkingService
}

func NewParkingController(parkings *services.ParkingService) *ParkingController {
	return &ParkingController{Parkings: parkings}
}

func (ctrl *ParkingController) GetParkings(c *gin.Context) {
	parkings, err := ctrl.Parkings.ListParkings()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, parkings)
}

func (ctrl *ParkingController) CreateParking(c *gin.Context) {
	var payload struct {
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	parking, err := ctrl.Parkings.CreateParking(payload.Address)
	if err != nil {
		if errors.Is(err, services.ErrAddressRequired) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, parking)
}

// DeleteParking removes a lot; its spots, their bookings and the bookings'
// payments and expenses go with it.
func (ctrl *ParkingController) DeleteParking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid parking id")
		return
	}

	if err := ctrl.Parkings.DeleteParking(id); err != nil {
		if errors.Is(err, services.ErrParkingNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (ctrl *ParkingController) GetSpots(c *gin.Context) {
	parkingID, ok := parkingFilter(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "parking_id must be a positive integer")
		return
	}

	spots, err := ctrl.Parkings.ListSpots(parkingID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, spots)
}

func (ctrl *ParkingController) CreateSpot(c *gin.Context) {
	var payload struct {
		ParkingID uint   `json:"parking_id"`
		Number    string `json:"number"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	spot, err := ctrl.Parkings.CreateSpot(payload.ParkingID, payload.Number)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrParkingRequired), errors.Is(err, services.ErrSpotNumberRequired):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrParkingNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrSpotExists):
			utils.JSONError(c, http.StatusConflict, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, spot)
}

func (ctrl *ParkingController) DeleteSpot(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid spot id")
		return
	}

	if err := ctrl.Parkings.DeleteSpot(id); err != nil {
		if errors.Is(err, services.ErrSpotNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
