package main

import (
	"biotrunk/config"
	"biotrunk/database"
	"biotrunk/models"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin, a faculty account and a couple of priced demo courses.
// Run from the repo root: go run ./scripts
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	users := []struct {
		name     string
		email    string
		role     string
		password string
	}{
		{"Platform Admin", "admin@biologytrunk.in", models.RoleAdmin, "admin@123"},
		{"Dr. Meera Nair", "meera.faculty@biologytrunk.in", models.RoleFaculty, "faculty@123"},
		{"Demo Student", "student@biologytrunk.in", models.RoleStudent, "student@123"},
	}

	created := 0
	var facultyID uint
	for _, u := range users {
		var existing models.User
		if err := db.Where("email = ?", u.email).First(&existing).Error; err == nil {
			log.Printf("User %s already exists, skipping", u.email)
			if u.role == models.RoleFaculty {
				facultyID = existing.ID
			}
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), config.AppConfig.SaltRound)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", u.email, err)
		}

		user := models.User{
			Name:     u.name,
			Email:    u.email,
			Role:     u.role,
			Password: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", u.email, err)
		}
		if u.role == models.RoleFaculty {
			facultyID = user.ID
		}
		created++
	}

	courses := []models.Course{
		{
			Title:       "NEET Biology Crash Course",
			Category:    "Biology",
			Subcategory: "NEET",
			Description: "Complete NEET biology preparation with live classes and notes.",
			Price:       2999,
			FacultyID:   facultyID,
		},
		{
			Title:       "Class 12 Botany Fundamentals",
			Category:    "Biology",
			Subcategory: "Botany",
			Description: "Plant physiology, genetics and ecology for boards.",
			Price:       499,
			FacultyID:   facultyID,
		},
		{
			Title:       "Human Physiology Basics",
			Category:    "Biology",
			Subcategory: "Zoology",
			Description: "Free introductory course on human organ systems.",
			Price:       0,
			FacultyID:   facultyID,
		},
	}

	for _, course := range courses {
		var existing models.Course
		if err := db.Where("title = ?", course.Title).First(&existing).Error; err == nil {
			log.Printf("Course %q already exists, skipping", course.Title)
			continue
		}
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to create course %q: %v", course.Title, err)
		}
		created++
	}

	log.Printf("Seeding complete, %d records created", created)
}
