package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	JWT      JWT
	Task     Task
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWT struct {
	SecretKey     string
	ExpiryMinutes int
}

type Task struct {
	GradingWorkers int
	QueueSize      int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_EXPIRY_MINUTES", 180)
	viper.SetDefault("GRADING_WORKERS", 4)
	viper.SetDefault("TASK_QUEUE_SIZE", 256)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWT.SecretKey = viper.GetString("JWT_SECRET_KEY")
	config.JWT.ExpiryMinutes = viper.GetInt("JWT_EXPIRY_MINUTES")

	config.Task.GradingWorkers = viper.GetInt("GRADING_WORKERS")
	config.Task.QueueSize = viper.GetInt("TASK_QUEUE_SIZE")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
