package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null" json:"tenantId"`

	Category        string  `gorm:"default:'General'" json:"category"`
	Name            string  `gorm:"not null" json:"name"`
	Description     string  `json:"description"`
	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int     `gorm:"not null" json:"durationMinutes"` // in minutes
	ImageURL        string  `json:"imageUrl"`
	DisplayOrder    int     `gorm:"default:0" json:"displayOrder"`
	IsActive        bool    `gorm:"default:true" json:"isActive"`

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
