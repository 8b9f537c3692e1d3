package utils

import (
	"biotrunk/database"
	"biotrunk/models"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartRosterScheduler runs the background reconciliation jobs: backfilling
// roster rows for completed enrollments whose roster append failed mid-flight,
// and purging expired OTP codes.
func StartRosterScheduler() {
	c := cron.New()

	c.AddFunc("@every 5m", ReconcileRoster)
	c.AddFunc("@every 30m", PurgeExpiredOTPs)

	c.Start()
	logScheduler("Roster scheduler started (roster every 5m, OTP purge every 30m)")
}

// ReconcileRoster appends missing roster rows for enrollments that hold a
// completed payment. The append is the same idempotent set-add the payment
// flow uses, so re-running it is always safe.
func ReconcileRoster() {
	db := database.Database.Db

	var missing []models.Enrollment
	err := db.
		Where("payment_status = ? AND is_deleted = false", models.PaymentStatusCompleted).
		Where("NOT EXISTS (SELECT 1 FROM course_students cs WHERE cs.course_id = enrollments.course_id AND cs.user_id = enrollments.user_id AND cs.is_deleted = false)").
		Find(&missing).Error
	if err != nil {
		logScheduler("Error fetching enrollments missing roster rows: " + err.Error())
		return
	}

	repaired := 0
	for _, enrollment := range missing {
		roster := models.CourseStudent{CourseID: enrollment.CourseID, UserID: enrollment.UserID}
		if err := db.Where("course_id = ? AND user_id = ?", enrollment.CourseID, enrollment.UserID).
			FirstOrCreate(&roster).Error; err != nil {
			logScheduler("Roster backfill failed for enrollment " + enrollment.ReceiptNumber + ": " + err.Error())
			continue
		}
		repaired++
	}

	if repaired > 0 {
		logScheduler(fmt.Sprintf("Roster reconciliation backfilled %d rows", repaired))
	}
}

// PurgeExpiredOTPs soft-deletes OTP rows past their expiry
func PurgeExpiredOTPs() {
	db := database.Database.Db

	result := db.Model(&models.OTP{}).
		Where("expires_at < ? AND is_deleted = false", time.Now()).
		Update("is_deleted", true)
	if result.Error != nil {
		logScheduler("OTP purge failed: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged expired OTP rows")
	}
}
