// services/availability_service.go
package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"salonbook-backend/models"
)

type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// Availability is the slot listing for one service on one date.
type Availability struct {
	Date            string   `json:"date"`
	ServiceName     string   `json:"serviceName,omitempty"`
	ServiceDuration int      `json:"serviceDuration,omitempty"`
	OpeningHours    string   `json:"openingHours,omitempty"`
	AvailableSlots  []string `json:"availableSlots"`
	IsHoliday       bool     `json:"isHoliday"`
	Reason          string   `json:"reason,omitempty"`
}

// GetAvailableSlots computes the bookable start times for a service on
// a calendar date, respecting holidays, weekly opening hours and live
// bookings. Past dates may be queried; booking them is rejected by the
// admission path, not here.
func (s *AvailabilityService) GetAvailableSlots(tenantID, serviceID uuid.UUID, date string) (*Availability, error) {
	targetDate, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, invalidRequest("Invalid date format. Use YYYY-MM-DD")
	}

	var service models.Service
	if err := s.db.Where("tenant_id = ? AND id = ? AND is_active = ?", tenantID, serviceID, true).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Service not found")
		}
		return nil, err
	}

	// A tenant is expected to always have a store-info row; its absence
	// is a data-integrity fault, not a user error.
	var storeInfo models.StoreInfo
	if err := s.db.Where("tenant_id = ?", tenantID).First(&storeInfo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Store info not found")
		}
		return nil, err
	}

	var holiday models.Holiday
	err = s.db.Where("tenant_id = ? AND holiday_date = ?", tenantID, targetDate).First(&holiday).Error
	if err == nil {
		reason := holiday.Reason
		if reason == "" {
			reason = DefaultHolidayReason
		}
		return &Availability{
			Date:           date,
			AvailableSlots: []string{},
			IsHoliday:      true,
			Reason:         reason,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	todayHours := storeInfo.HoursFor(DayKey(targetDate))
	if todayHours == "" || todayHours == ClosedMarker {
		return &Availability{
			Date:           date,
			AvailableSlots: []string{},
			IsHoliday:      true,
			Reason:         RegularClosureReason,
		}, nil
	}

	open, close, err := ParseHoursRange(todayHours)
	if err != nil {
		return nil, err
	}

	occupied, err := occupiedRanges(s.db, tenantID, serviceID, targetDate)
	if err != nil {
		return nil, err
	}

	return &Availability{
		Date:            date,
		ServiceName:     service.Name,
		ServiceDuration: service.DurationMinutes,
		OpeningHours:    todayHours,
		AvailableSlots:  BuildSlots(open, close, service.DurationMinutes, occupied),
		IsHoliday:       false,
	}, nil
}

// occupiedRanges loads every pending/confirmed booking for the service
// and date and converts each into its [start, start+duration) interval.
// Admission calls this too, inside its transaction; the conflict probe
// must scan all of them, never just the first row found.
func occupiedRanges(tx *gorm.DB, tenantID, serviceID uuid.UUID, date time.Time) ([]TimeRange, error) {
	var bookings []models.Booking
	if err := tx.Where(
		"tenant_id = ? AND service_id = ? AND booking_date = ? AND status IN ?",
		tenantID, serviceID, date, models.LiveBookingStatuses,
	).Find(&bookings).Error; err != nil {
		return nil, err
	}

	occupied := make([]TimeRange, 0, len(bookings))
	for _, b := range bookings {
		start, err := ParseClock(b.BookingTime)
		if err != nil {
			log.Printf("Skipping booking %s with unparseable time %q", b.ID, b.BookingTime)
			continue
		}
		occupied = append(occupied, TimeRange{Start: start, End: start + b.DurationMinutes})
	}
	return occupied, nil
}
