package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
)

// newHandlerTestDB swaps config.DB for a private in-memory database so
// handlers can run without a server.
func newHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Tenant{},
		&models.StoreInfo{},
		&models.Holiday{},
		&models.Service{},
		&models.Customer{},
		&models.Booking{},
		&models.Payment{},
		&models.Notification{},
	))

	config.DB = db
	return db
}

func seedOwnerStore(t *testing.T, db *gorm.DB) (models.Tenant, models.Service) {
	t.Helper()

	tenant := models.Tenant{Slug: "gangnam-hair", BusinessName: "강남 헤어"}
	require.NoError(t, db.Create(&tenant).Error)

	hours := models.JSONB{}
	for _, day := range []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"} {
		hours[day] = "10:00-20:00"
	}
	require.NoError(t, db.Create(&models.StoreInfo{
		TenantID:     tenant.ID,
		OpeningHours: hours,
	}).Error)

	service := models.Service{
		TenantID:        tenant.ID,
		Name:            "커트",
		Price:           30000,
		DurationMinutes: 60,
		IsActive:        true,
	}
	require.NoError(t, db.Create(&service).Error)

	return tenant, service
}

// ownerContext builds a request context the auth middleware would have
// produced for the tenant's owner.
func ownerContext(tenant models.Tenant, method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("tenantId", tenant.ID.String())

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	c.Request = req
	return c, w
}

func TestHolidayLifecycle(t *testing.T) {
	db := newHandlerTestDB(t)
	tenant, service := seedOwnerStore(t, db)

	dateStr := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	payload := fmt.Sprintf(`{"holidayDate":%q,"reason":"임시 휴무"}`, dateStr)

	c, w := ownerContext(tenant, http.MethodPost, payload)
	CreateHoliday(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Holiday
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// The handler-written row must block admission for that date.
	bookingSvc := services.NewBookingService(db, nil)
	_, err := bookingSvc.Create(tenant.ID, services.CreateBookingInput{
		ServiceID:     service.ID,
		CustomerName:  "김민지",
		CustomerPhone: "01012345678",
		BookingDate:   dateStr,
		BookingTime:   "11:00",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidRequest)
	assert.Equal(t, "This date is a holiday", err.Error())

	c, w = ownerContext(tenant, http.MethodDelete, "")
	c.Params = gin.Params{{Key: "id", Value: created.ID.String()}}
	DeleteHoliday(c)
	require.Equal(t, http.StatusOK, w.Code)

	// The delete leaves no tombstone behind.
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Holiday{}).
		Where("tenant_id = ?", tenant.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// Re-adding the same date works again.
	c, w = ownerContext(tenant, http.MethodPost, payload)
	CreateHoliday(c)
	require.Equal(t, http.StatusCreated, w.Code)

	// And deleting it re-opens the date for booking.
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	c, w = ownerContext(tenant, http.MethodDelete, "")
	c.Params = gin.Params{{Key: "id", Value: created.ID.String()}}
	DeleteHoliday(c)
	require.Equal(t, http.StatusOK, w.Code)

	_, err = bookingSvc.Create(tenant.ID, services.CreateBookingInput{
		ServiceID:     service.ID,
		CustomerName:  "김민지",
		CustomerPhone: "01012345678",
		BookingDate:   dateStr,
		BookingTime:   "11:00",
	})
	require.NoError(t, err)
}
