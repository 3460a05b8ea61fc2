package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook-backend/models"
)

func testBookingInput(service models.Service, date, clock string) CreateBookingInput {
	return CreateBookingInput{
		ServiceID:     service.ID,
		CustomerName:  "김민지",
		CustomerPhone: "01012345678",
		CustomerEmail: "minji@example.com",
		BookingDate:   date,
		BookingTime:   clock,
	}
}

func TestCreateBookingAdmits(t *testing.T) {
	db := newTestDB(t)
	tenant, service := seedBookableStore(t, db)
	svc := NewBookingService(db, nil)
	dateStr, day := futureDate(7)

	booking, err := svc.Create(tenant.ID, testBookingInput(service, dateStr, "11:00"))
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, models.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, "11:00", booking.BookingTime)
	assert.Equal(t, service.DurationMinutes, booking.DurationMinutes)
	assert.Equal(t, service.Price, booking.TotalPrice)
	assert.Equal(t, service.Name, booking.Service.Name)

	var notification models.Notification
	require.NoError(t, db.Where("tenant_id = ? AND booking_id = ?", tenant.ID, booking.ID).
		First(&notification).Error)
	assert.Equal(t, models.NotificationBookingCreated, notification.Type)

	// A second booking on the same phone updates the customer in place.
	_, err = svc.Create(tenant.ID, testBookingInput(service, dateStr, "14:00"))
	require.NoError(t, err)

	var customerCount int64
	require.NoError(t, db.Model(&models.Customer{}).
		Where("tenant_id = ?", tenant.ID).Count(&customerCount).Error)
	assert.EqualValues(t, 1, customerCount)

	var occupied []models.Booking
	require.NoError(t, db.Where("tenant_id = ? AND booking_date = ?", tenant.ID, day).
		Find(&occupied).Error)
	assert.Len(t, occupied, 2)
}

func TestCreateBookingRejectsHoliday(t *testing.T) {
	db := newTestDB(t)
	tenant, service := seedBookableStore(t, db)
	svc := NewBookingService(db, nil)
	dateStr, day := futureDate(7)

	require.NoError(t, db.Create(&models.Holiday{
		TenantID:    tenant.ID,
		HolidayDate: day,
		Reason:      "임시 휴무",
	}).Error)

	_, err := svc.Create(tenant.ID, testBookingInput(service, dateStr, "11:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, "This date is a holiday", err.Error())
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	db := newTestDB(t)
	tenant, service := seedBookableStore(t, db)
	svc := NewBookingService(db, nil)
	dateStr, _ := futureDate(7)

	_, err := svc.Create(tenant.ID, testBookingInput(service, dateStr, "11:00"))
	require.NoError(t, err)

	// [11:30, 12:30) overlaps the committed [11:00, 12:00).
	_, err = svc.Create(tenant.ID, testBookingInput(service, dateStr, "11:30"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "This time slot is already booked", err.Error())

	// Touching at 12:00 is not an overlap.
	_, err = svc.Create(tenant.ID, testBookingInput(service, dateStr, "12:00"))
	require.NoError(t, err)
}

func TestCreateBookingPastDate(t *testing.T) {
	db := newTestDB(t)
	tenant, service := seedBookableStore(t, db)
	svc := NewBookingService(db, nil)

	_, err := svc.Create(tenant.ID, testBookingInput(service, "2020-01-01", "11:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, "Cannot book in the past", err.Error())

	// An unknown service wins over the past date: the caller gets the
	// 404, not a misleading date complaint.
	unknown := models.Service{ID: uuid.New(), DurationMinutes: 60}
	_, err = svc.Create(tenant.ID, testBookingInput(unknown, "2020-01-01", "11:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Service not found", err.Error())
}

func TestCancelBookingTwice(t *testing.T) {
	db := newTestDB(t)
	tenant, service := seedBookableStore(t, db)
	svc := NewBookingService(db, nil)
	dateStr, _ := futureDate(7)

	booking, err := svc.Create(tenant.ID, testBookingInput(service, dateStr, "11:00"))
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(tenant.ID, booking.ID, CancelledByCustomer))

	var cancelled models.Booking
	require.NoError(t, db.First(&cancelled, "id = ?", booking.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, CancelledByCustomer, cancelled.CancelledBy)
	require.NotNil(t, cancelled.CancelledAt)

	err = svc.Cancel(tenant.ID, booking.ID, CancelledByCustomer)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, "Booking is already cancelled", err.Error())
}

func TestCancelBookingInside24Hours(t *testing.T) {
	db := newTestDB(t)
	tenant, service := seedBookableStore(t, db)
	svc := NewBookingService(db, nil)
	today, _ := futureDate(0)

	// A same-day booking always starts less than 24 hours from now.
	booking, err := svc.Create(tenant.ID, testBookingInput(service, today, "23:30"))
	require.NoError(t, err)

	err = svc.Cancel(tenant.ID, booking.ID, CancelledByCustomer)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, "Cancellation must be made at least 24 hours before the booking time", err.Error())
}

func TestCancelBookingRefundsPayment(t *testing.T) {
	db := newTestDB(t)
	tenant, service := seedBookableStore(t, db)
	svc := NewBookingService(db, nil)
	dateStr, _ := futureDate(7)

	booking, err := svc.Create(tenant.ID, testBookingInput(service, dateStr, "11:00"))
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, db.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Updates(map[string]interface{}{
			"status":         models.BookingStatusConfirmed,
			"payment_status": models.PaymentStatusPaid,
		}).Error)
	require.NoError(t, db.Create(&models.Payment{
		TenantID:  tenant.ID,
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Status:    models.PaymentStatusPaid,
		PaidAt:    &now,
	}).Error)

	require.NoError(t, svc.Cancel(tenant.ID, booking.ID, CancelledByCustomer))

	var cancelled models.Booking
	require.NoError(t, db.First(&cancelled, "id = ?", booking.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, models.PaymentStatusRefunded, cancelled.PaymentStatus)

	var payment models.Payment
	require.NoError(t, db.Where("booking_id = ?", booking.ID).First(&payment).Error)
	assert.Equal(t, models.PaymentStatusRefunded, payment.Status)
	require.NotNil(t, payment.RefundedAt)
	assert.Equal(t, booking.TotalPrice, payment.RefundAmount)
}
