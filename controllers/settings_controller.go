package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-backend/services"
	"parking-backend/utils"
)

// SettingsController serves the back-office configuration.
type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	setting, err := ctrl.Settings.Get()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	var payload struct {
		OrganizationName string          `json:"organization_name"`
		Preferences      json.RawMessage `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	setting, err := ctrl.Settings.Update(payload.OrganizationName, payload.Preferences)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
