package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/config"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtSigningMethod = jwt.SigningMethodHS256

var (
	ErrInvalidToken = entities.NewError(entities.ErrAuth, "INVALID_TOKEN", "invalid token")
	ErrExpiredToken = entities.NewError(entities.ErrAuth, "TOKEN_EXPIRED", "token expired")
)

// Claims carried by operator access tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTGateway mints and verifies HS256 operator tokens.
type JWTGateway struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

var _ interfaces.IIdentityGateway = (*JWTGateway)(nil)

func NewJWTGateway(cfg config.JWTConfig) (*JWTGateway, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("jwt issuer is required")
	}
	if cfg.ExpirationMinutes <= 0 {
		return nil, fmt.Errorf("jwt expiration minutes must be positive")
	}
	return &JWTGateway{secret: []byte(cfg.Secret), issuer: cfg.Issuer, ttl: cfg.TTL()}, nil
}

func (g *JWTGateway) Issue(user entities.User, now time.Time) (string, time.Time, error) {
	if strings.TrimSpace(user.ID) == "" {
		return "", time.Time{}, fmt.Errorf("user id is required")
	}
	expiresAt := now.Add(g.ttl)
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    g.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing jwt: %w", err)
	}
	return signed, expiresAt, nil
}

func (g *JWTGateway) Verify(token string) (entities.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", t.Header["alg"])
			}
			return g.secret, nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(g.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Identity{}, ErrExpiredToken
		}
		return entities.Identity{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return entities.Identity{}, ErrInvalidToken
	}
	return entities.Identity{
		SubjectID: claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
