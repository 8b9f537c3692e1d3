package models

import "gorm.io/gorm"

const (
	NotificationTypeContentUpload = "content_upload"
	NotificationTypeLiveClass     = "live_class"
	NotificationTypeEnrollment    = "enrollment"
	NotificationTypeAnnouncement  = "announcement"
)

type Notification struct {
	gorm.Model
	RecipientID  uint   `json:"recipient_id" gorm:"index;not null"`
	Type         string `json:"type" gorm:"size:30;not null"` // content_upload, live_class, enrollment, announcement
	Title        string `json:"title"`
	Message      string `json:"message"`
	CourseID     uint   `json:"course_id" gorm:"index"`
	EnrollmentID uint   `json:"enrollment_id"`
	Read         bool   `json:"read" gorm:"default:false"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
