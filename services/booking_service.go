package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"salonbook-backend/models"
	"salonbook-backend/utils"
)

const CancelledByCustomer = "customer"

type BookingService struct {
	db       *gorm.DB
	notifier *NotifierService
}

func NewBookingService(db *gorm.DB, notifier *NotifierService) *BookingService {
	return &BookingService{db: db, notifier: notifier}
}

// CreateBookingInput carries the caller-supplied booking request.
// Date/time strings are pre-validated by the handler; the service
// parses them again and never trusts the caller's slot choice.
type CreateBookingInput struct {
	ServiceID      uuid.UUID
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  string
	BookingDate    string // YYYY-MM-DD
	BookingTime    string // HH:MM
	SpecialRequest string
}

// Create re-derives every availability constraint against current state
// and, only if none is violated, records the booking, the upserted
// customer and the owner notification as one transaction.
//
// The service row is locked FOR UPDATE for the duration, so two
// concurrent admissions for the same service serialize; the partial
// unique index on live (tenant, service, date, time) catches anything
// that still slips through and is surfaced as a conflict.
func (s *BookingService) Create(tenantID uuid.UUID, input CreateBookingInput) (*models.Booking, error) {
	targetDate, err := time.ParseInLocation("2006-01-02", input.BookingDate, time.Local)
	if err != nil {
		return nil, invalidRequest("Invalid date format. Use YYYY-MM-DD")
	}
	startMinutes, err := ParseClock(input.BookingTime)
	if err != nil {
		return nil, invalidRequest("Invalid time format. Use HH:MM")
	}

	var booking models.Booking
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("tenant_id = ? AND id = ? AND is_active = ?", tenantID, input.ServiceID, true).
			First(&service).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Service not found")
			}
			return err
		}

		// Calendar-date comparison only: same-day bookings at an already
		// elapsed hour are not rejected here. Checked after the service
		// resolves, so an unknown service stays a 404.
		today := utils.BeginningOfDay(time.Now())
		if utils.BeginningOfDay(targetDate).Before(today) {
			return invalidRequest("Cannot book in the past")
		}

		var holiday models.Holiday
		err := tx.Where("tenant_id = ? AND holiday_date = ?", tenantID, targetDate).First(&holiday).Error
		if err == nil {
			return invalidRequest("This date is a holiday")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var storeInfo models.StoreInfo
		if err := tx.Where("tenant_id = ?", tenantID).First(&storeInfo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Store info not found")
			}
			return err
		}
		todayHours := storeInfo.HoursFor(DayKey(targetDate))
		if todayHours == "" || todayHours == ClosedMarker {
			return invalidRequest("Store is closed on this day")
		}

		candidate := TimeRange{Start: startMinutes, End: startMinutes + service.DurationMinutes}
		occupied, err := occupiedRanges(tx, tenantID, input.ServiceID, targetDate)
		if err != nil {
			return err
		}
		for _, booked := range occupied {
			if candidate.Overlaps(booked) {
				return conflict("This time slot is already booked")
			}
		}

		// The customer row must exist once a booking exists for the
		// phone, so the upsert rides in the same transaction.
		customer := models.Customer{
			TenantID: tenantID,
			Name:     input.CustomerName,
			Phone:    input.CustomerPhone,
			Email:    input.CustomerEmail,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email"}),
		}).Create(&customer).Error; err != nil {
			return err
		}

		booking = models.Booking{
			TenantID:        tenantID,
			ServiceID:       input.ServiceID,
			CustomerName:    input.CustomerName,
			CustomerPhone:   input.CustomerPhone,
			CustomerEmail:   input.CustomerEmail,
			BookingDate:     targetDate,
			BookingTime:     FormatClock(startMinutes),
			DurationMinutes: service.DurationMinutes,
			TotalPrice:      service.Price,
			SpecialRequest:  input.SpecialRequest,
			Status:          models.BookingStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
		}
		if err := tx.Create(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflict("This time slot is already booked")
			}
			return err
		}
		booking.Service = service

		message := fmt.Sprintf("새로운 예약이 등록되었습니다. (%s, %s %s)",
			input.CustomerName, input.BookingDate, booking.BookingTime)
		return createNotification(tx, tenantID, booking.ID, models.NotificationBookingCreated, message)
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.BookingCreated(&booking)
	}

	return &booking, nil
}

// Get returns one booking with its service and payment sub-objects.
func (s *BookingService) Get(tenantID, bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Service").Preload("Payment").
		Where("tenant_id = ? AND id = ?", tenantID, bookingID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Booking not found")
		}
		return nil, err
	}
	return &booking, nil
}

// Cancel performs a customer-initiated cancellation. Only live bookings
// at least 24 hours before their start may be cancelled; a paid booking
// is additionally marked refunded (refund execution is external).
func (s *BookingService) Cancel(tenantID, bookingID uuid.UUID, cancelledBy string) error {
	var cancelled models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("tenant_id = ? AND id = ?", tenantID, bookingID).
			First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Booking not found")
			}
			return err
		}

		if booking.Status == models.BookingStatusCancelled {
			return invalidRequest("Booking is already cancelled")
		}
		if booking.Status == models.BookingStatusCompleted {
			return invalidRequest("Cannot cancel completed booking")
		}

		start := utils.CombineDateTime(booking.BookingDate, booking.BookingTime)
		if !CanCancel(start, time.Now()) {
			return invalidRequest("Cancellation must be made at least 24 hours before the booking time")
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":       models.BookingStatusCancelled,
			"cancelled_at": &now,
			"cancelled_by": cancelledBy,
		}
		wasPaid := booking.PaymentStatus == models.PaymentStatusPaid
		if wasPaid {
			updates["payment_status"] = models.PaymentStatusRefunded
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}

		if wasPaid {
			if err := tx.Model(&models.Payment{}).
				Where("tenant_id = ? AND booking_id = ?", tenantID, booking.ID).
				Updates(map[string]interface{}{
					"status":        models.PaymentStatusRefunded,
					"refunded_at":   &now,
					"refund_amount": booking.TotalPrice,
				}).Error; err != nil {
				return err
			}
		}

		cancelled = booking
		message := fmt.Sprintf("예약이 취소되었습니다. (%s)", booking.CustomerName)
		return createNotification(tx, tenantID, booking.ID, models.NotificationBookingCancelled, message)
	})
	if err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.BookingCancelled(&cancelled)
	}

	return nil
}

func createNotification(tx *gorm.DB, tenantID, bookingID uuid.UUID, notifType, message string) error {
	notification := models.Notification{
		TenantID:  tenantID,
		BookingID: bookingID,
		Type:      notifType,
		Message:   message,
	}
	return tx.Create(&notification).Error
}
