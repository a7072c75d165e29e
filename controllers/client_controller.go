package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parking-backend/services"
	"parking-backend/utils"
)

// ClientController serves the tenant list and CRUD.
type ClientController struct {
	Clients *services.ClientService
}

func NewClientController(clients *services.ClientService) *ClientController {
	return &ClientController{Clients: clients}
}

type clientPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// GetClients lists clients with search, sort and active/inactive filters.
func (ctrl *ClientController) GetClients(c *gin.Context) {
	filter := services.ClientFilter{
		Query:  c.Query("q"),
		Sort:   c.Query("sort"),
		Active: c.Query("filter"),
	}

	clients, err := ctrl.Clients.List(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, clients)
}

func (ctrl *ClientController) GetClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid client id")
		return
	}

	client, err := ctrl.Clients.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client)
}

func (ctrl *ClientController) CreateClient(c *gin.Context) {
	var payload clientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	client, err := ctrl.Clients.Create(payload.Name, payload.Phone, payload.Notes)
	if err != nil {
		if errors.Is(err, services.ErrClientNameRequired) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, client)
}

func (ctrl *ClientController) UpdateClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid client id")
		return
	}

	var payload clientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	client, err := ctrl.Clients.Update(id, payload.Name, payload.Phone, payload.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrClientNameRequired):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client)
}

// DeleteClient refuses to delete a client who still has bookings.
func (ctrl *ClientController) DeleteClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid client id")
		return
	}

	if err := ctrl.Clients.Delete(id); err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrClientHasBookings):
			utils.JSONError(c, http.StatusConflict, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
