package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the subject a token pair is issued for. During registration the
// row does not exist yet, so ID carries a placeholder until the store assigns
// the real one.
type Identity struct {
	ID    int64
	Email string
}

// TokenPair is an access/refresh token pair for one identity.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// TokenIssuer produces signed token pairs scoped to a realm.
type TokenIssuer interface {
	IssuePair(ctx context.Context, realm string, identity Identity) (*TokenPair, error)
}

type TokenService struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	redis      *RedisService
}

func NewTokenService(secretKey string, accessTTL, refreshTTL time.Duration, redis *RedisService) *TokenService {
	return &TokenService{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		redis:      redis,
	}
}

// IssuePair signs an HS256 access/refresh pair. The refresh token's JTI is
// cached in Redis for the refresh TTL so it can be looked up on rotation.
func (s *TokenService) IssuePair(ctx context.Context, realm string, identity Identity) (*TokenPair, error) {
	if len(s.secretKey) == 0 {
		return nil, errors.New("signing key is not configured")
	}

	now := time.Now()
	expiresAt := now.Add(s.accessTTL)

	accessToken, err := s.sign(jwt.MapClaims{
		"jti":     uuid.NewString(),
		"realm":   realm,
		"user_id": identity.ID,
		"email":   identity.Email,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshJTI := uuid.NewString()
	refreshToken, err := s.sign(jwt.MapClaims{
		"jti":     refreshJTI,
		"realm":   realm,
		"user_id": identity.ID,
		"email":   identity.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(s.refreshTTL).Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	if s.redis != nil {
		if err := s.redis.SetRefreshToken(ctx, refreshJTI, identity.Email, s.refreshTTL); err != nil {
			logger.Warn().Err(err).Str("jti", refreshJTI).Msg("failed to cache refresh token")
		}
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *TokenService) sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

var _ TokenIssuer = (*TokenService)(nil)
