package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr  string
	FrontendURL string
	DBHost      string
	DBPort      int
	DBUser      string
	DBPassword  string
	DBName      string
	RedisAddr   string
	JWTSecret   string
}

// LoadConfig reads configuration from the environment with sane defaults
// for local development.
func LoadConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", ":5000")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "numisvault")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("JWT_SECRET", "fallback_secret_key")

	return &Config{
		ServerAddr:  v.GetString("PORT"),
		FrontendURL: v.GetString("FRONTEND_URL"),
		DBHost:      v.GetString("DB_HOST"),
		DBPort:      v.GetInt("DB_PORT"),
		DBUser:      v.GetString("DB_USER"),
		DBPassword:  v.GetString("DB_PASSWORD"),
		DBName:      v.GetString("DB_NAME"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		JWTSecret:   v.GetString("JWT_SECRET"),
	}
}

// DSN builds the Postgres connection string for GORM.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
