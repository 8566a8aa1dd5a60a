package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"estatelink/internal/database"
	"estatelink/internal/domain"
	"estatelink/internal/domain/subscription"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "estatelink.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&subscription.Plan{},
		&subscription.Subscription{},
		&subscription.Bill{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	seedPlans(db)
	seedAdmin(db)

	log.Println("Seed complete")
}

func seedPlans(db *gorm.DB) {
	log.Println("Creating plans...")

	plans := []subscription.Plan{
		{
			Name:          "Basic",
			Slug:          subscription.BasicPlanSlug,
			Description:   "Free tier for getting started. One property, no extras.",
			MonthlyPrice:  0,
			MaxProperties: 1,
			IsActive:      true,
			CreatedAt:     time.Now(),
		},
		{
			Name:            "Professional",
			Slug:            "professional",
			Description:     "Up to ten properties with analytics and staff management.",
			MonthlyPrice:    49,
			MaxProperties:   10,
			Analytics:       true,
			StaffManagement: true,
			IsActive:        true,
			CreatedAt:       time.Now(),
		},
		{
			Name:            "Enterprise",
			Slug:            "enterprise",
			Description:     "Unlimited properties, full API access.",
			MonthlyPrice:    199,
			MaxProperties:   -1,
			Analytics:       true,
			APIAccess:       true,
			StaffManagement: true,
			IsActive:        true,
			CreatedAt:       time.Now(),
		},
	}

	for i := range plans {
		var existing subscription.Plan
		err := db.Where("slug = ?", plans[i].Slug).First(&existing).Error

		switch err {
		case nil:
			log.Printf("Plan %q already present, skipping", plans[i].Slug)
		case gorm.ErrRecordNotFound:
			if err := db.Create(&plans[i]).Error; err != nil {
				log.Fatal("failed to create plan:", err)
			}
			log.Printf("Plan created: %s ($%.0f/mo)", plans[i].Name, plans[i].MonthlyPrice)
		default:
			log.Fatal("plan lookup failed:", err)
		}
	}
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@estatelink.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var existing domain.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("Admin %s already present, skipping", email)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatal("admin lookup failed:", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash admin password:", err)
	}

	now := time.Now()
	admin := domain.User{
		Email:         email,
		PasswordHash:  string(hash),
		Name:          "Platform Admin",
		Role:          domain.RoleAdmin,
		Status:        domain.UserActive,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("failed to create admin:", err)
	}
	log.Printf("Admin created: %s", email)
}
