// controllers/availability.go
package controllers

import (
	"net/http"
	"salonbook-backend/config"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAvailableSlots lists the bookable start times for a service on a date.
// GET /api/:tenantSlug/availability?serviceId=xxx&date=2025-12-25
func GetAvailableSlots(c *gin.Context) {
	tenantID, exists := c.Get("tenantId")
	if !exists {
		utils.RespondWithError(c, http.StatusNotFound, "Tenant not found")
		return
	}

	tenantUUID, err := uuid.Parse(tenantID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid tenant ID format")
		return
	}

	serviceID := c.Query("serviceId")
	if serviceID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "serviceId is required")
		return
	}
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	date := c.Query("date")
	if date == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date is required (format: YYYY-MM-DD)")
		return
	}
	if !utils.ValidateDateString(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	availability, err := services.NewAvailabilityService(config.DB).
		GetAvailableSlots(tenantUUID, serviceUUID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": availability})
}
