package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Holiday marks a full-day closure that overrides weekly opening hours.
type Holiday struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_tenant_holiday_date,priority:1" json:"tenantId"`

	HolidayDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_tenant_holiday_date,priority:2" json:"holidayDate"`
	Reason      string    `json:"reason"`

	gorm.Model
}

func (h *Holiday) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return
}
