package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"salonbook-backend/models"
)

// newTestDB opens a private in-memory database migrated to the full
// schema. SQLite drops the row-locking clause Postgres uses, so the
// admission path runs unchanged minus the lock.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A :memory: database lives and dies with its connection.
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
	return db
}

// seedBookableStore creates an active tenant open 10:00-20:00 every day
// with one active 60-minute service.
func seedBookableStore(t *testing.T, db *gorm.DB) (models.Tenant, models.Service) {
	t.Helper()

	tenant := models.Tenant{Slug: "gangnam-hair", BusinessName: "강남 헤어"}
	require.NoError(t, db.Create(&tenant).Error)

	hours := models.JSONB{}
	for _, day := range []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"} {
		hours[day] = "10:00-20:00"
	}
	store := models.StoreInfo{TenantID: tenant.ID, OpeningHours: hours}
	require.NoError(t, db.Create(&store).Error)

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

// futureDate returns a date n days ahead as the wire string plus the
// local-midnight value the store layer persists.
func futureDate(n int) (string, time.Time) {
	s := time.Now().AddDate(0, 0, n).Format("2006-01-02")
	day, _ := time.ParseInLocation("2006-01-02", s, time.Local)
	return s, day
}
