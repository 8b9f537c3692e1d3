package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusDropped   = "dropped"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Enrollment tracks a student's relationship to one course, including the
// payment sub-record written by the payment verification flow. At most one
// row exists per (user, course) pair, enforced by the composite unique index.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID   uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Status     string    `json:"status" gorm:"size:20;default:'active'"` // active, completed, dropped
	Progress   float64   `json:"progress" gorm:"default:0"`              // completion percentage (0-100)

	// Payment sub-record. PaymentStatus only ever moves pending -> completed
	// and the receipt number is assigned once, on successful verification.
	PaymentOrderID   string         `json:"payment_order_id" gorm:"size:100;index"`
	PaymentID        string         `json:"payment_id" gorm:"size:100"`
	PaymentSignature string         `json:"-" gorm:"size:255"`
	PaymentAmount    float64        `json:"payment_amount" gorm:"default:0"`
	PaymentCurrency  string         `json:"payment_currency" gorm:"size:10;default:'INR'"`
	PaymentStatus    string         `json:"payment_status" gorm:"size:20;default:'pending'"` // pending, completed
	PaidAt           *time.Time     `json:"paid_at"`
	VerifiedAt       *time.Time     `json:"verified_at"`
	ReceiptNumber    string         `json:"receipt_number" gorm:"size:40;index"`
	GatewayPayload   datatypes.JSON `json:"-"` // raw gateway callback, kept for audit

	IsDeleted bool `json:"-" gorm:"default:false"`
}

// CompletedContent is one entry of an enrollment's completed-content set.
type CompletedContent struct {
	gorm.Model
	EnrollmentID uint `json:"enrollment_id" gorm:"uniqueIndex:idx_completed_enrollment_content;not null"`
	ContentID    uint `json:"content_id" gorm:"uniqueIndex:idx_completed_enrollment_content;not null"`
	IsDeleted    bool `json:"-" gorm:"default:false"`
}
