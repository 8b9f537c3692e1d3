package models

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title       string  `json:"title" gorm:"not null"`
	Category    string  `json:"category" gorm:"not null"`
	Subcategory string  `json:"subcategory"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"default:0"` // price in rupees (major units)
	FacultyID   uint    `json:"faculty_id" gorm:"index"`
	IsDeleted   bool    `json:"-" gorm:"default:false"`
}

// CourseStudent is one roster entry: the student is enrolled in the course.
// The composite unique index makes the roster a set, appends are idempotent.
type CourseStudent struct {
	gorm.Model
	CourseID  uint `json:"course_id" gorm:"uniqueIndex:idx_roster_course_user;not null"`
	UserID    uint `json:"user_id" gorm:"uniqueIndex:idx_roster_course_user;not null"`
	IsDeleted bool `json:"-" gorm:"default:false"`
}
