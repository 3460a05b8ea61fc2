package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreInfo holds the public-facing store profile, one row per tenant.
// OpeningHours maps weekday keys (sun..sat) to either an "HH:MM-HH:MM"
// range or the closed marker "휴무".
type StoreInfo struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"tenantId"`

	Description   string `gorm:"type:text" json:"description"`
	Phone         string `json:"phone"`
	AddressDetail string `json:"addressDetail"`

	OpeningHours JSONB `gorm:"type:jsonb;default:'{}'" json:"openingHours"`

	gorm.Model
}

func (s *StoreInfo) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// HoursFor returns the raw opening-hours string for a weekday key, or
// "" when no entry exists.
func (s *StoreInfo) HoursFor(dayKey string) string {
	v, ok := s.OpeningHours[dayKey]
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// Custom JSONB type for opening hours
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
