package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TenantStatusActive    = "active"
	TenantStatusSuspended = "suspended"
)

type Tenant struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Slug string    `gorm:"uniqueIndex;not null" json:"slug"`

	BusinessName string `gorm:"not null" json:"businessName"`
	BusinessType string `json:"businessType"`
	OwnerName    string `json:"ownerName"`
	OwnerEmail   string `json:"ownerEmail"`
	OwnerPhone   string `json:"ownerPhone"`
	Address      string `json:"address"`

	Status             string `gorm:"type:varchar(20);default:'active'" json:"status"`
	SubscriptionStatus string `gorm:"type:varchar(20);default:'active'" json:"subscriptionStatus"`

	Services  []Service  `gorm:"foreignKey:TenantID"`
	Bookings  []Booking  `gorm:"foreignKey:TenantID"`
	Customers []Customer `gorm:"foreignKey:TenantID"`
	Holidays  []Holiday  `gorm:"foreignKey:TenantID"`

	gorm.Model
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// Bookable reports whether the store is open for public traffic at all.
func (t *Tenant) Bookable() bool {
	return t.Status == TenantStatusActive && t.SubscriptionStatus == TenantStatusActive
}
