package main

import (
	"flag"
	"log"

	"go-bms-api/internal/model"
	"go-bms-api/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Bootstrap tool: creates a staff account, or promotes an existing one.
// Staff accounts cannot be created through the public signup flow.
func main() {
	username := flag.String("username", "admin", "staff account username")
	password := flag.String("password", "", "password for a newly created account")
	flag.Parse()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.User{}, &model.Product{}, &model.Sale{}, &model.Consumption{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// 3. Promote if the account already exists
	var user model.User
	err := db.Where("username = ?", *username).First(&user).Error
	if err == nil {
		if user.IsStaff {
			log.Printf("User %s is already staff", *username)
			return
		}
		if err := db.Model(&user).Update("is_staff", true).Error; err != nil {
			log.Fatalf("Failed to promote user: %v", err)
		}
		log.Printf("User %s promoted to staff", *username)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Lookup failed: %v", err)
	}

	// 4. Otherwise create a fresh staff account
	if *password == "" {
		log.Fatal("User does not exist; provide -password to create it")
	}
	if len(*password) < 8 {
		log.Fatal("Password must be at least 8 characters")
	}

	staff := &model.User{
		Username: *username,
		IsStaff:  true,
	}
	if err := staff.SetPassword(*password); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	if err := db.Create(staff).Error; err != nil {
		log.Fatalf("Failed to create staff user: %v", err)
	}

	log.Printf("Staff user created: %s", *username)
}
