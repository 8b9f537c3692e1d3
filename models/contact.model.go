package models

import "gorm.io/gorm"

// ContactMessage stores one contact-form submission
type ContactMessage struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"`
	Subject   string `json:"subject"`
	Message   string `json:"message" gorm:"not null"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
