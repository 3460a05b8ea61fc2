package controllers

import (
	"salonbook-backend/config"
	"salonbook-backend/services"
)

var notifier *services.NotifierService

// InitServices wires the long-lived notifier after the DB is connected.
func InitServices(n *services.NotifierService) {
	notifier = n
}

func newBookingService() *services.BookingService {
	return services.NewBookingService(config.DB, notifier)
}
