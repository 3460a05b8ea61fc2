// services/notifier_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
	"salonbook-backend/models"
	"salonbook-backend/utils"
)

// NotifierService sends customer-facing SMS around booking events and
// runs the daily reminder sweep. Durable owner notifications are rows
// written by the booking transaction itself; SMS delivery is best
// effort and never fails a booking.
type NotifierService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewNotifierService(db *gorm.DB) *NotifierService {
	s := &NotifierService{db: db, from: os.Getenv("TWILIO_FROM_NUMBER")}

	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if accountSid != "" && authToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	} else {
		log.Println("Twilio credentials not set, SMS delivery disabled")
	}

	return s
}

func (s *NotifierService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendBookingReminders()
	})

	c.Start()
	log.Println("Booking reminder scheduler started")
}

// BookingCreated texts the customer after a booking is committed.
func (s *NotifierService) BookingCreated(booking *models.Booking) {
	body := fmt.Sprintf("[%s] 예약이 접수되었습니다. %s %s / %s",
		booking.Service.Name,
		booking.BookingDate.Format("2006-01-02"), booking.BookingTime,
		booking.CustomerName)
	s.sendSMS(booking.CustomerPhone, body)
}

// BookingCancelled texts the customer after a cancellation is committed.
func (s *NotifierService) BookingCancelled(booking *models.Booking) {
	body := fmt.Sprintf("예약이 취소되었습니다. %s %s / %s",
		booking.BookingDate.Format("2006-01-02"), booking.BookingTime,
		booking.CustomerName)
	s.sendSMS(booking.CustomerPhone, body)
}

// SendBookingReminders writes a reminder notification for every
// confirmed booking scheduled tomorrow and texts the customers.
func (s *NotifierService) SendBookingReminders() {
	log.Println("Starting booking reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	var tenants []models.Tenant
	if err := s.db.Where("status = ? AND subscription_status = ?",
		models.TenantStatusActive, models.TenantStatusActive).Find(&tenants).Error; err != nil {
		log.Printf("Failed to fetch tenants: %v", err)
		return
	}

	for _, tenant := range tenants {
		s.processTenantReminders(tenant.ID, tomorrow)
	}

	log.Println("Booking reminder processing completed")
}

func (s *NotifierService) processTenantReminders(tenantID uuid.UUID, date time.Time) {
	var bookings []models.Booking
	if err := s.db.Preload("Service").
		Where("tenant_id = ? AND booking_date = ? AND status = ?",
			tenantID, date, models.BookingStatusConfirmed).
		Find(&bookings).Error; err != nil {
		log.Printf("Tenant %s: failed to fetch tomorrow's bookings: %v", tenantID, err)
		return
	}

	for _, booking := range bookings {
		message := fmt.Sprintf("내일 예약이 있습니다. (%s, %s %s)",
			booking.CustomerName, booking.BookingDate.Format("2006-01-02"), booking.BookingTime)
		notification := models.Notification{
			TenantID:  booking.TenantID,
			BookingID: booking.ID,
			Type:      models.NotificationBookingReminder,
			Message:   message,
		}
		if err := s.db.Create(&notification).Error; err != nil {
			log.Printf("Tenant %s: failed to record reminder for booking %s: %v", tenantID, booking.ID, err)
			continue
		}

		body := fmt.Sprintf("[%s] 내일 %s에 예약이 있습니다.", booking.Service.Name, booking.BookingTime)
		s.sendSMS(booking.CustomerPhone, body)
	}
}

func (s *NotifierService) sendSMS(to, body string) {
	if s.client == nil || s.from == "" {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send SMS to %s: %v", to, err)
	}
}
