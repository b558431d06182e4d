package config

import (
	"fmt"
	"os"

	"github.com/varad16/fittrack-pro/models"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.FoodItem{},
		&models.Meal{},
		&models.FoodEntry{},
		&models.Workout{},
		&models.WeightLog{},
		&models.BodyMeasurement{},
		&models.DailyActivityLog{},
		&models.DailyGoal{},
		&models.Activity{},
		&models.RoutePoint{},
		&models.ActivityPause{},
		&models.Challenge{},
		&models.ChallengeParticipant{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
