package infra

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hostlane/internal/models/db_models"
)

func InitPostgresql(dsn string) *gorm.DB {

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&db_models.Account{},
		&db_models.Plan{},
		&db_models.PlanFeature{},
		&db_models.PromoCode{},
		&db_models.Order{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Errorf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Errorf("Error closing database connection: %v", err)
	} else {
		log.Info("PostgreSQL database connection closed")
	}
}
