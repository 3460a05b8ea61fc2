package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is upserted whenever a booking is admitted; name and email
// are last-write-wins, keyed by (tenant, phone).
type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_tenant_phone,priority:1" json:"tenantId"`

	Name  string `gorm:"not null" json:"name"`
	Phone string `gorm:"not null;uniqueIndex:idx_tenant_phone,priority:2" json:"phone"`
	Email string `json:"email"`

	TotalBookings int `gorm:"default:0" json:"totalBookings"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
