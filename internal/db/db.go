package db

import (
	"log"
	"os"

	"prohub/internal/models"
	"prohub/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=prohub port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         utils.GormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	utils.LogInfo("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Post{},
		&models.Resource{},
		&models.Video{},
		&models.WarningType{},
		&models.Warning{},
		&models.SanctionEvent{},
		&models.ContentReport{},
		&models.ModerationAction{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	utils.LogInfo("Database migration completed")

	seedWarningTypes()
}

// seedWarningTypes installs the default infraction catalog on first boot.
func seedWarningTypes() {
	var count int64
	DB.Model(&models.WarningType{}).Count(&count)
	if count > 0 {
		return
	}

	days := func(d int) *int { return &d }
	types := []models.WarningType{
		{Name: "spam", Points: 5, ExpiresInDays: nil, Description: "Unsolicited advertising or repeated junk content"},
		{Name: "offtopic", Points: 1, ExpiresInDays: days(30), Description: "Content posted to the wrong section"},
		{Name: "flame", Points: 3, ExpiresInDays: days(90), Description: "Personal attacks or hostile behavior"},
		{Name: "illegal", Points: 10, ExpiresInDays: nil, Description: "Content that violates the law"},
	}

	for _, t := range types {
		if err := DB.Create(&t).Error; err != nil {
			utils.LogError(err, "Failed to seed warning type "+t.Name)
		}
	}
	utils.LogInfo("Default warning types created")
}
