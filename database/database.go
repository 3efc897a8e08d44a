package database

import (
	"fmt"

	"github.com/DjalmaFelipe02/Exam-manager-API/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the Postgres connection used by the whole application.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	log.Info().Str("host", cfg.Database.Host).Str("name", cfg.Database.Name).Msg("Database connection established")
	return db, nil
}
