package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"auth-service/internal/application/services"
	"auth-service/internal/config"
	httpdelivery "auth-service/internal/delivery/http"
	"auth-service/internal/infrastructure"
	pgrepo "auth-service/internal/infrastructure/db/postgres"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found, using environment")
	}
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := db.AutoMigrate(&pgrepo.UserModel{}); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate users table")
	}

	redisService := infrastructure.NewRedisService(cfg)
	tokenService := infrastructure.NewTokenService(cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, redisService)
	hasher := infrastructure.NewBcryptHasher(bcrypt.DefaultCost)
	mailer := infrastructure.NewResendMailer(cfg)

	userRepo := pgrepo.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, hasher, tokenService, mailer)
	handler := httpdelivery.NewAuthHandler(authService)

	e := httpdelivery.NewRouter(handler)

	logger.Info().Str("port", cfg.Port).Msg("starting auth service")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
