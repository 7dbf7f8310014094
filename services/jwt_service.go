package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTService interface {
	// GenerateToken issues an HS256 access token with the user's email as
	// subject, mirroring the bearer tokens the API has always issued.
	GenerateToken(ctx context.Context, email string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*TokenClaims, error)
	GetAccessTTL() time.Duration
}

type TokenClaims struct {
	jwt.RegisteredClaims
}

type jwtService struct {
	secret    []byte
	accessTTL time.Duration
}

type jwtServiceBuilder struct {
	secret    string
	accessTTL time.Duration
}

func NewJWTService(secret string) *jwtServiceBuilder {
	return &jwtServiceBuilder{
		secret:    secret,
		accessTTL: 30 * time.Minute,
	}
}

func (b *jwtServiceBuilder) WithAccessTTL(ttl time.Duration) *jwtServiceBuilder {
	b.accessTTL = ttl
	return b
}

func (b *jwtServiceBuilder) Build() JWTService {
	return &jwtService{
		secret:    []byte(b.secret),
		accessTTL: b.accessTTL,
	}
}

func (s *jwtService) GenerateToken(ctx context.Context, email string) (string, error) {
	now := time.Now()

	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}

func (s *jwtService) ValidateToken(ctx context.Context, tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

func (s *jwtService) GetAccessTTL() time.Duration {
	return s.accessTTL
}
