package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ContentTypePDF       = "pdf"
	ContentTypeVideo     = "video"
	ContentTypeLiveClass = "live_class"
)

// Content is the delivery metadata for one piece of course material
type Content struct {
	gorm.Model
	CourseID      uint       `json:"course_id" gorm:"index;not null"`
	FacultyID     uint       `json:"faculty_id" gorm:"index;not null"`
	Type          string     `json:"type" gorm:"size:20;not null"` // pdf, video, live_class
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	PdfURL        string     `json:"pdf_url"`
	VideoURL      string     `json:"video_url"`
	LiveClassURL  string     `json:"live_class_url"`
	LiveClassDate *time.Time `json:"live_class_date"`
	LiveClassTime string     `json:"live_class_time" gorm:"size:20"`
	IsDeleted     bool       `json:"-" gorm:"default:false"`
}
