package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parking-backend/services"
	"parking-backend/utils"
)

// ExpenseController serves per-booking expense tracking.
type ExpenseController struct {
	Expenses *services.ExpenseService
}

func NewExpenseController(expenses *services.ExpenseService) *ExpenseController {
	return &ExpenseController{Expenses: expenses}
}

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("booking_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (ctrl *ExpenseController) GetExpenses(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	expenses, err := ctrl.Expenses.ListForBooking(bookingID)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, expenses)
}

func (ctrl *ExpenseController) CreateExpense(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	var input services.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	expense, err := ctrl.Expenses.Add(bookingID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrAmountRequired),
			errors.Is(err, services.ErrAmountNotPositive),
			errors.Is(err, utils.ErrInvalidDate):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, expense)
}

func (ctrl *ExpenseController) DeleteExpense(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid expense id")
		return
	}

	if err := ctrl.Expenses.Delete(id); err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
