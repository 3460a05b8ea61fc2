package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationBookingCreated   = "booking_created"
	NotificationBookingCancelled = "booking_cancelled"
	NotificationBookingReminder  = "booking_reminder"
)

// Notification is an owner-facing event record tied to a booking.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;index;not null" json:"tenantId"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"bookingId"`

	Type    string `gorm:"type:varchar(30);not null" json:"type"`
	Message string `gorm:"type:text;not null" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`

	gorm.Model
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
