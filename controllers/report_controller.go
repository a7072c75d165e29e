package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-backend/services"
	"parking-backend/utils"
)

// ReportController serves the financial reports page.
type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// GetReport builds one of the payments/charges/finance reports.
//
// The report kind is optional unvalidated input: no kind, or an unknown kind,
// yields an empty result rather than an error. A kind without a full date
// range also yields no report. Malformed dates are a validation failure.
func (ctrl *ReportController) GetReport(c *gin.Context) {
	kind := services.ReportKind(c.Query("type"))
	startRaw := c.Query("start")
	endRaw := c.Query("end")

	if kind == "" || startRaw == "" || endRaw == "" {
		utils.JSONSuccess(c, http.StatusOK, nil)
		return
	}

	start, err := utils.ParseDate(startRaw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := utils.ParseDate(endRaw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	parkingID, ok := parkingFilter(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "parking_id must be a positive integer")
		return
	}

	table, err := ctrl.Reports.Build(kind, start, end, parkingID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, table)
}
