package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/techspire-labs/academy-api/model"
	"github.com/techspire-labs/academy-api/utils/auth"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedCourses(); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	if err := s.SeedProjects(); err != nil {
		return fmt.Errorf("failed to seed projects: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default admin user
func (s *Seeder) SeedAdminUser() error {
	// Check if admin already exists
	var count int64
	if err := s.db.Model(&model.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Admin user already exists, skipping...")
		return nil
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminPassword == "" {
		log.Println("⚠️  ADMIN_USERNAME and ADMIN_PASSWORD environment variables not set, skipping admin user creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := model.User{
		Username:     adminUsername,
		PasswordHash: passwordHash,
		Role:         "admin",
	}

	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("👤 Created admin user %q", adminUsername)
	return nil
}

// SeedCourses creates the initial course catalog
func (s *Seeder) SeedCourses() error {
	var count int64
	if err := s.db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Courses already exist, skipping...")
		return nil
	}

	courses := []model.Course{
		{
			Title:           "Full Stack Web Development Bootcamp",
			Image:           "https://loremflickr.com/800/600/web,coding?lock=11",
			Price:           14999,
			DiscountedPrice: 9999,
			Category:        "Elite",
			Level:           "Beginner",
			Author:          "Team TechSpire",
			Rating:          4.7,
			Students:        860,
			Duration:        "6 months",
			Skills:          mustJSON([]string{"HTML", "CSS", "JavaScript", "React", "Node.js", "MongoDB"}),
			Overview:        "Learn to build and deploy production web applications from scratch with live mentorship and real client projects.",
		},
		{
			Title:           "Machine Learning Foundations",
			Image:           "https://loremflickr.com/800/600/ai,data?lock=12",
			Price:           19999,
			DiscountedPrice: 14999,
			Category:        "Premium",
			Level:           "Intermediate",
			Author:          "Team TechSpire",
			Rating:          4.8,
			Students:        540,
			Duration:        "4 months",
			Skills:          mustJSON([]string{"Python", "NumPy", "Pandas", "scikit-learn", "TensorFlow"}),
			Overview:        "A hands-on introduction to machine learning, from data wrangling to deploying trained models as services.",
		},
	}

	if err := s.db.Create(&courses).Error; err != nil {
		return err
	}

	log.Printf("📚 Seeded %d courses", len(courses))
	return nil
}

// SeedProjects creates the initial project showcase. Seed image URLs
// deliberately point at the retired legacy provider; the read-path repair
// pass rewrites them on first listing.
func (s *Seeder) SeedProjects() error {
	var count int64
	if err := s.db.Model(&model.Project{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Projects already exist, skipping...")
		return nil
	}

	projects := []model.Project{
		{
			Slug:         "smart-college-management-system",
			Title:        "Smart College Management System",
			Category:     model.CategoryWebDevelopment,
			Description:  "A role-based portal covering admissions, attendance, fee tracking and result publication for colleges.",
			ImageURL:     "https://source.unsplash.com/800x600/?college",
			Technologies: mustJSON([]string{"React", "Node.js", "Express", "MongoDB"}),
		},
		{
			Slug:         "ai-crop-disease-detector",
			Title:        "AI Based Crop Disease Detection",
			Category:     model.CategoryAIML,
			Description:  "A CNN classifier that identifies common crop diseases from leaf photos and suggests treatment.",
			ImageURL:     "https://source.unsplash.com/800x600/?agriculture",
			Technologies: mustJSON([]string{"Python", "TensorFlow", "Flask"}),
		},
		{
			Slug:         "campus-food-delivery-app",
			Title:        "Campus Food Delivery App",
			Category:     model.CategoryAppDevelopment,
			Description:  "A Flutter app for ordering from campus canteens with live order tracking and UPI payments.",
			ImageURL:     "",
			Technologies: mustJSON([]string{"Flutter", "Firebase", "Razorpay"}),
		},
	}

	if err := s.db.Create(&projects).Error; err != nil {
		return err
	}

	log.Printf("🗂️  Seeded %d projects", len(projects))
	return nil
}

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return datatypes.JSON(b)
}
