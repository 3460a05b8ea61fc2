// controllers/public_booking.go
package controllers

import (
	"net/http"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	ServiceID      string `json:"serviceId" binding:"required"`
	CustomerName   string `json:"customerName" binding:"required"`
	CustomerPhone  string `json:"customerPhone" binding:"required"`
	CustomerEmail  string `json:"customerEmail" binding:"omitempty,email"`
	BookingDate    string `json:"bookingDate" binding:"required"` // YYYY-MM-DD
	BookingTime    string `json:"bookingTime" binding:"required"` // HH:MM
	SpecialRequest string `json:"specialRequest"`
}

// CreateBooking admits a new booking for the store
func CreateBooking(c *gin.Context) {
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

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}
	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if !utils.ValidateDateString(input.BookingDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}
	if !utils.ValidateClockString(input.BookingTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time format. Use HH:MM")
		return
	}

	bookingService := newBookingService()
	booking, err := bookingService.Create(tenantUUID, services.CreateBookingInput{
		ServiceID:      serviceUUID,
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		CustomerEmail:  input.CustomerEmail,
		BookingDate:    input.BookingDate,
		BookingTime:    input.BookingTime,
		SpecialRequest: input.SpecialRequest,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":            booking.ID,
			"serviceName":   booking.Service.Name,
			"customerName":  booking.CustomerName,
			"bookingDate":   booking.BookingDate.Format("2006-01-02"),
			"bookingTime":   booking.BookingTime,
			"totalPrice":    booking.TotalPrice,
			"status":        booking.Status,
			"paymentStatus": booking.PaymentStatus,
			"message":       "예약이 생성되었습니다. 결제를 진행해주세요.",
		},
	})
}

// GetBooking retrieves one booking with its service and payment
func GetBooking(c *gin.Context) {
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

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	bookingService := newBookingService()
	booking, err := bookingService.Get(tenantUUID, bookingUUID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
}

// CancelBooking cancels a booking on behalf of the customer
func CancelBooking(c *gin.Context) {
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

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	bookingService := newBookingService()
	if err := bookingService.Cancel(tenantUUID, bookingUUID, services.CancelledByCustomer); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled successfully"})
}
