package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is bookkeeping only; gateway execution lives outside this backend.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;index;not null" json:"tenantId"`
	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"bookingId"`

	Amount        float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status        string  `gorm:"type:varchar(20);not null" json:"status"` // paid, refunded
	PaymentMethod string  `json:"paymentMethod"`

	PaidAt       *time.Time `json:"paidAt,omitempty"`
	RefundedAt   *time.Time `json:"refundedAt,omitempty"`
	RefundAmount float64    `gorm:"type:decimal(10,2);default:0.0" json:"refundAmount"`

	gorm.Model
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
