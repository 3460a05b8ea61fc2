// controllers/owner_holiday.go
package controllers

import (
	"net/http"
	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateHolidayInput defines the expected JSON structure for adding a holiday
type CreateHolidayInput struct {
	HolidayDate string `json:"holidayDate" binding:"required"` // YYYY-MM-DD
	Reason      string `json:"reason"`
}

// GetHolidays lists the store's holidays in date order
func GetHolidays(c *gin.Context) {
	tenantID, exists := c.Get("tenantId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant ID not found in context")
		return
	}

	tenantUUID, err := uuid.Parse(tenantID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid tenant ID format")
		return
	}

	var holidays []models.Holiday
	if err := config.DB.Where("tenant_id = ?", tenantUUID).
		Order("holiday_date asc").Find(&holidays).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve holidays")
		return
	}

	c.JSON(http.StatusOK, holidays)
}

// CreateHoliday adds a full-day closure overriding weekly hours
func CreateHoliday(c *gin.Context) {
	tenantID, exists := c.Get("tenantId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant ID not found in context")
		return
	}

	tenantUUID, err := uuid.Parse(tenantID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid tenant ID format")
		return
	}

	var input CreateHolidayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidateDateString(input.HolidayDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}
	day, err := time.ParseInLocation("2006-01-02", input.HolidayDate, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	holiday := models.Holiday{
		TenantID:    tenantUUID,
		HolidayDate: day,
		Reason:      input.Reason,
	}

	if err := config.DB.Create(&holiday).Error; err != nil {
		utils.RespondWithError(c, http.StatusConflict, "Holiday already exists for this date")
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

// DeleteHoliday removes a holiday so the weekly hours apply again
func DeleteHoliday(c *gin.Context) {
	tenantID, exists := c.Get("tenantId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant ID not found in context")
		return
	}

	tenantUUID, err := uuid.Parse(tenantID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid tenant ID format")
		return
	}

	holidayUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid holiday ID format")
		return
	}

	// Hard delete: the (tenant, date) unique index covers soft-deleted
	// rows too, so a tombstone would block re-adding the same date.
	result := config.DB.Unscoped().
		Where("tenant_id = ? AND id = ?", tenantUUID, holidayUUID).
		Delete(&models.Holiday{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete holiday")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Holiday not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Holiday deleted successfully"})
}
