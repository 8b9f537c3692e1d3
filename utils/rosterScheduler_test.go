package utils

import (
	"biotrunk/database"
	"biotrunk/models"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSchedulerDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.OTP{},
		&models.Course{},
		&models.CourseStudent{},
		&models.Enrollment{},
	))

	database.Database = database.DbInstance{Db: db}
	return db
}

func TestReconcileRosterBackfillsMissingRows(t *testing.T) {
	db := setupSchedulerDB(t)

	now := time.Now()
	// Completed payment whose roster append was lost mid-flight
	orphan := models.Enrollment{
		UserID:        1,
		CourseID:      10,
		EnrolledAt:    now,
		Status:        models.EnrollmentStatusActive,
		PaymentStatus: models.PaymentStatusCompleted,
		PaidAt:        &now,
		ReceiptNumber: "RCP-1-SCHEDTEST",
	}
	require.NoError(t, db.Create(&orphan).Error)

	// Pending enrollment, must not be backfilled
	pending := models.Enrollment{
		UserID:        2,
		CourseID:      10,
		EnrolledAt:    now,
		Status:        models.EnrollmentStatusActive,
		PaymentStatus: models.PaymentStatusPending,
	}
	require.NoError(t, db.Create(&pending).Error)

	// Completed enrollment already on the roster
	onRoster := models.Enrollment{
		UserID:        3,
		CourseID:      10,
		EnrolledAt:    now,
		Status:        models.EnrollmentStatusActive,
		PaymentStatus: models.PaymentStatusCompleted,
		PaidAt:        &now,
		ReceiptNumber: "RCP-2-SCHEDTEST",
	}
	require.NoError(t, db.Create(&onRoster).Error)
	require.NoError(t, db.Create(&models.CourseStudent{CourseID: 10, UserID: 3}).Error)

	ReconcileRoster()

	var count int64
	require.NoError(t, db.Model(&models.CourseStudent{}).
		Where("course_id = ? AND user_id = ?", 10, 1).Count(&count).Error)
	assert.EqualValues(t, 1, count, "orphaned completed enrollment gets a roster row")

	require.NoError(t, db.Model(&models.CourseStudent{}).
		Where("course_id = ? AND user_id = ?", 10, 2).Count(&count).Error)
	assert.EqualValues(t, 0, count, "pending enrollment stays off the roster")

	require.NoError(t, db.Model(&models.CourseStudent{}).
		Where("course_id = ? AND user_id = ?", 10, 3).Count(&count).Error)
	assert.EqualValues(t, 1, count, "existing roster row is not duplicated")

	// Running again is a no-op
	ReconcileRoster()
	require.NoError(t, db.Model(&models.CourseStudent{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestPurgeExpiredOTPs(t *testing.T) {
	db := setupSchedulerDB(t)

	expired := models.OTP{UserID: 1, Email: "a@example.com", Code: "111111", ExpiresAt: time.Now().Add(-time.Minute)}
	live := models.OTP{UserID: 2, Email: "b@example.com", Code: "222222", ExpiresAt: time.Now().Add(10 * time.Minute)}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&live).Error)

	PurgeExpiredOTPs()

	// Fresh destination per lookup, a reused struct carries its primary key
	// into the next query's conditions
	var purged models.OTP
	require.NoError(t, db.First(&purged, expired.ID).Error)
	assert.True(t, purged.IsDeleted)

	var kept models.OTP
	require.NoError(t, db.First(&kept, live.ID).Error)
	assert.False(t, kept.IsDeleted)
}
