package config

import (
	"os"
	"time"
)

// Config holds every setting the service reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	EmailAPIKey string
	EmailSender string
}

func Load() *Config {
	return &Config{
		Port:        GetEnvAsString("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecretKey:    os.Getenv("JWT_SECRET_KEY"),
		AccessTokenTTL:  GetEnvAsDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: GetEnvAsDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisHost:     GetEnvAsString("REDIS_HOST", "localhost"),
		RedisPort:     GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),

		EmailAPIKey: os.Getenv("EMAIL_API_KEY"),
		EmailSender: os.Getenv("EMAIL_SENDER"),
	}
}
