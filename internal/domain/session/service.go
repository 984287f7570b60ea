// Package session resuelve el login: valida credenciales y emite el token.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinica-api/internal/domain/users"
	"clinica-api/internal/ports/auth"
	"clinica-api/internal/ports/storage"
)

// ErrInvalidCredentials cubre correo desconocido, usuario inactivo y contraseña incorrecta.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (users.User, error)
}

type Service struct {
	users  UserFinder
	hasher users.PasswordHasher
	issuer auth.TokenIssuer

	observe func(outcome string)

	// hash contra el que se compara un correo desconocido
	dummyHash string
}

// Outcomes de Login para ObserveWith.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)

func NewService(finder UserFinder, hasher users.PasswordHasher, issuer auth.TokenIssuer) (*Service, error) {
	dummy, err := hasher.Hash("clinica-api:dummy-password")
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}
	return &Service{
		users:     finder,
		hasher:    hasher,
		issuer:    issuer,
		observe:   func(string) {},
		dummyHash: dummy,
	}, nil
}

// ObserveWith registra un callback por cada intento de login (métricas).
func (s *Service) ObserveWith(fn func(outcome string)) {
	if fn != nil {
		s.observe = fn
	}
}

type Result struct {
	UserID    int64
	FullName  string
	Email     string
	Token     string
	ExpiresAt time.Time
}

func (s *Service) Login(ctx context.Context, email, password string) (Result, error) {
	res, err := s.login(ctx, email, password)
	switch {
	case err == nil:
		s.observe(OutcomeSuccess)
	case errors.Is(err, ErrInvalidCredentials):
		s.observe(OutcomeInvalidCredentials)
	default:
		s.observe(OutcomeError)
	}
	return res, err
}

func (s *Service) login(ctx context.Context, email, password string) (Result, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		// mismo costo que un usuario existente
		_ = s.hasher.Compare(s.dummyHash, password)
		return Result{}, ErrInvalidCredentials
	}
	if err != nil {
		return Result{}, fmt.Errorf("find user: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return Result{}, ErrInvalidCredentials
	}
	if !u.Active {
		return Result{}, ErrInvalidCredentials
	}

	tok, err := s.issuer.CreateToken(auth.Identity{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.FullName,
	})
	if err != nil {
		return Result{}, fmt.Errorf("create token: %w", err)
	}

	return Result{
		UserID:    u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Token:     tok.AccessToken,
		ExpiresAt: tok.ExpiresAt,
	}, nil
}
