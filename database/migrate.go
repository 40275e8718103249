package database

import (
	"booklyn_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate приводит схему к актуальному состоянию моделей
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.BandProfile{},
		&models.VenueProfile{},
		&models.GigPosting{},
		&models.GigApplication{},
		&models.GigRequest{},
		&models.Notification{},
	)
}
