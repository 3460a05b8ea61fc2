// controllers/owner_store.go
package controllers

import (
	"errors"
	"net/http"
	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreInfo returns the store profile and opening hours
func GetStoreInfo(c *gin.Context) {
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

	var storeInfo models.StoreInfo
	if err := config.DB.Where("tenant_id = ?", tenantUUID).First(&storeInfo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Store info not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, storeInfo)
}

// UpdateStoreInfoInput defines the expected JSON structure for updating
// the store profile
type UpdateStoreInfoInput struct {
	Description   *string `json:"description"`
	Phone         *string `json:"phone"`
	AddressDetail *string `json:"addressDetail"`
}

// UpdateStoreInfo updates the store profile fields
func UpdateStoreInfo(c *gin.Context) {
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

	var input UpdateStoreInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var storeInfo models.StoreInfo
	if err := config.DB.Where("tenant_id = ?", tenantUUID).First(&storeInfo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Store info not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Description != nil {
		storeInfo.Description = *input.Description
	}
	if input.Phone != nil {
		storeInfo.Phone = *input.Phone
	}
	if input.AddressDetail != nil {
		storeInfo.AddressDetail = *input.AddressDetail
	}

	if err := config.DB.Save(&storeInfo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update store info")
		return
	}

	c.JSON(http.StatusOK, storeInfo)
}

// UpdateOpeningHours replaces the weekly opening-hours map. Every value
// must be an "HH:MM-HH:MM" range or the closed marker.
func UpdateOpeningHours(c *gin.Context) {
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

	var input struct {
		OpeningHours map[string]string `json:"openingHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	hours := models.JSONB{}
	for day, value := range input.OpeningHours {
		if !validDayKey(day) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown weekday key: "+day)
			return
		}
		if value != services.ClosedMarker {
			if _, _, err := services.ParseHoursRange(value); err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid hours for "+day+": "+value)
				return
			}
		}
		hours[day] = value
	}

	var storeInfo models.StoreInfo
	if err := config.DB.Where("tenant_id = ?", tenantUUID).First(&storeInfo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Store info not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	storeInfo.OpeningHours = hours
	if err := config.DB.Save(&storeInfo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update opening hours")
		return
	}

	c.JSON(http.StatusOK, storeInfo)
}

func validDayKey(day string) bool {
	switch day {
	case "sun", "mon", "tue", "wed", "thu", "fri", "sat":
		return true
	}
	return false
}
