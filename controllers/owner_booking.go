// controllers/owner_booking.go
package controllers

import (
	"errors"
	"io"
	"net/http"
	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBookings lists the store's bookings, optionally filtered by date
// and status. GET /api/admin/bookings?date=2025-12-25&status=pending
func GetBookings(c *gin.Context) {
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

	query := config.DB.Preload("Service").Preload("Payment").
		Where("tenant_id = ?", tenantUUID)

	if date := c.Query("date"); date != "" {
		if !utils.ValidateDateString(date) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		query = query.Where("booking_date = ?", day)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("booking_date desc, booking_time asc").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ConfirmBooking moves a pending booking to confirmed and records the
// payment as collected. The gateway call itself is external; only the
// bookkeeping lives here.
func ConfirmBooking(c *gin.Context) {
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

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	// Body is optional; anything present must still be valid JSON.
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Where("tenant_id = ? AND id = ?", tenantUUID, bookingUUID).
			First(&booking).Error; err != nil {
			return err
		}

		if booking.Status != models.BookingStatusPending {
			return errInvalidTransition
		}

		now := time.Now()
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":         models.BookingStatusConfirmed,
			"payment_status": models.PaymentStatusPaid,
		}).Error; err != nil {
			return err
		}

		payment := models.Payment{
			TenantID:      tenantUUID,
			BookingID:     booking.ID,
			Amount:        booking.TotalPrice,
			Status:        models.PaymentStatusPaid,
			PaymentMethod: input.PaymentMethod,
			PaidAt:        &now,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else if errors.Is(err, errInvalidTransition) {
			utils.RespondWithError(c, http.StatusBadRequest, "Only pending bookings can be confirmed")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to confirm booking")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed"})
}

// CompleteBooking marks a confirmed booking as completed after the visit
func CompleteBooking(c *gin.Context) {
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

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	result := config.DB.Model(&models.Booking{}).
		Where("tenant_id = ? AND id = ? AND status = ?",
			tenantUUID, bookingUUID, models.BookingStatusConfirmed).
		Update("status", models.BookingStatusCompleted)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to complete booking")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Only confirmed bookings can be completed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking completed"})
}

var errInvalidTransition = errors.New("invalid status transition")
