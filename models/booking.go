package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// LiveBookingStatuses are the statuses that occupy time on the calendar.
// Cancelled and completed bookings are history and never block a slot.
var LiveBookingStatuses = []string{BookingStatusPending, BookingStatusConfirmed}

// Booking captures the customer identity at booking time rather than
// referencing the customer row, and copies duration and price from the
// service so later service edits never change a past booking's footprint.
//
// The partial unique index on (tenant, service, date, time) rejects the
// second of two racing inserts for the same slot; the admission
// transaction is the primary guard, this index is the backstop.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_live_slot,priority:1" json:"tenantId"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_live_slot,priority:2" json:"serviceId"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	BookingDate     time.Time `gorm:"type:date;not null;uniqueIndex:idx_live_slot,priority:3" json:"bookingDate"`
	BookingTime     string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_live_slot,priority:4,where:status = 'pending' OR status = 'confirmed'" json:"bookingTime"` // HH:MM
	DurationMinutes int       `gorm:"not null" json:"durationMinutes"`

	TotalPrice     float64 `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	SpecialRequest string  `gorm:"type:text" json:"specialRequest"`

	Status        string `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus string `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy string     `json:"cancelledBy,omitempty"`

	Service Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Payment *Payment `gorm:"foreignKey:BookingID" json:"payment,omitempty"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
