package database

import (
	"fmt"
	"log"

	"symposium-api/config"
	"symposium-api/models"
	"symposium-api/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

var REDIS *redis.Client

// InitDB initializes the database connection, migrates the models and
// populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.MysqlUser, config.MysqlPassword, config.MysqlHost, config.MysqlPort, config.MysqlDB)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// InitRedis initializes the Redis client used for response caching.
// Callers treat any Redis error as a cache miss, so a missing Redis
// instance degrades to uncached reads.
func InitRedis() {
	REDIS = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})
}

// Migrate runs AutoMigrate over every model in dependency order
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Organizer{},
		&models.EnigmaEvent{},
		&models.CarteBlancheEvent{},
		&models.EnigmaRound{},
		&models.CarteBlancheRound{},
		&models.Account{},
		&models.EventAccount{},
		&models.Registration{},
		&models.SimpleRegistration{},
		&models.CartItem{},
		&models.VerifiedRegistration{},
		&models.SymposiumStatus{},
		&models.RegistrationTimer{},
		&models.PasswordOtp{},
		&models.Experience{},
	)
}

// Populate populates the database with default values if needed
func Populate() {
	// One status row per symposium track; conflict-free so restarts are idempotent
	for _, name := range []string{models.SymposiumEnigma, models.SymposiumCarteblanche} {
		status := models.SymposiumStatus{SymposiumName: name}
		if err := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&status).Error; err != nil {
			log.Println("failed to seed symposium status: ", err)
		}
	}

	// Create a default organizer if none exists yet, so the admin
	// dashboard is reachable on a fresh install
	var countOrganizers int64
	DB.Model(&models.Organizer{}).Count(&countOrganizers)
	if countOrganizers == 0 {
		password := config.DefaultOrganizerPassword
		if password == "" {
			password = "admin"
		}

		hashed, err := utils.HashPassword(password)
		if err != nil {
			panic(err)
		}

		organizer := models.Organizer{
			Name:     "Admin",
			Email:    config.DefaultOrganizerEmail,
			Mobile:   "0000000000",
			Password: hashed,
		}
		if err := DB.Create(&organizer).Error; err != nil {
			log.Println("failed to create default organizer: ", err)
		} else {
			log.Println("Default organizer created")
		}
	}
}
