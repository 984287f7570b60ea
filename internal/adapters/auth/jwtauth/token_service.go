// Package jwtauth emite y verifica los bearer tokens de la API (HS256).
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"clinica-api/internal/ports/auth"
)

const DefaultExpiryMinutes = 60

var ErrSigningKeyMissing = errors.New("jwt signing key is not configured")

// Config se construye una vez al arrancar y se pasa al servicio.
type Config struct {
	Key           string
	Issuer        string
	Audience      string
	ExpiryMinutes int // <= 0 => DefaultExpiryMinutes
}

// userClaims: sub = id de usuario; email y name van como claims propios.
type userClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type TokenService struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenService(cfg Config) (*TokenService, error) {
	if strings.TrimSpace(cfg.Key) == "" {
		return nil, ErrSigningKeyMissing
	}

	minutes := cfg.ExpiryMinutes
	if minutes <= 0 {
		minutes = DefaultExpiryMinutes
	}

	return &TokenService{
		key:      []byte(cfg.Key),
		issuer:   strings.TrimSpace(cfg.Issuer),
		audience: strings.TrimSpace(cfg.Audience),
		ttl:      time.Duration(minutes) * time.Minute,
		now:      time.Now,
	}, nil
}

func (s *TokenService) CreateToken(id auth.Identity) (auth.Token, error) {
	if id.UserID <= 0 {
		return auth.Token{}, errors.New("jwtauth: identity without user id")
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := userClaims{
		Email: id.Email,
		Name:  id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(id.UserID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return auth.Token{}, fmt.Errorf("jwtauth: sign: %w", err)
	}

	// ExpiresAt con la misma precisión (segundos) que el claim exp.
	return auth.Token{
		AccessToken: signed,
		ExpiresAt:   claims.ExpiresAt.Time.UTC(),
	}, nil
}

// Verify implementa auth.AuthVerifier.
func (s *TokenService) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrTokenInvalid
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	var claims userClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return auth.Claims{}, auth.ErrTokenExpired
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return auth.Claims{}, auth.ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return auth.Claims{}, fmt.Errorf("%w: bad subject", auth.ErrTokenInvalid)
	}

	out := auth.Claims{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return out, nil
}
