package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clinica-api/internal/ports/storage"
)

// MaxPasswordBytes es el límite de bcrypt; el validador cuenta caracteres, no bytes.
const MaxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// PasswordHasher lo implementa adapters/auth/bcrypt.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	now    func() time.Time
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
	}
}

type CreateInput struct {
	Email    string
	Password string
	FullName string
	DoctorID *int64
	Active   bool
}

// UpdateInput reemplaza todos los campos; Password nil/vacío conserva el hash actual.
type UpdateInput struct {
	Email    string
	FullName string
	DoctorID *int64
	Active   bool
	Password *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	hash, err := s.hash(in.Password)
	if err != nil {
		return User{}, err
	}

	u := User{
		Email:        NormalizeEmail(in.Email),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(in.FullName),
		DoctorID:     in.DoctorID,
		Active:       in.Active,
		CreatedAt:    s.now().UTC(),
	}

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return User{}, err
	}
	u.ID = id
	return u, nil
}

func (s *Service) hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	h, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return h, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return User{}, storage.ErrNotFound
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	current.Email = NormalizeEmail(in.Email)
	current.FullName = strings.TrimSpace(in.FullName)
	current.DoctorID = in.DoctorID
	current.Active = in.Active

	if in.Password != nil && *in.Password != "" {
		hash, err := s.hash(*in.Password)
		if err != nil {
			return User{}, err
		}
		current.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return User{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// EnsureAdmin crea el usuario inicial si no existe. Devuelve true si lo creó.
func (s *Service) EnsureAdmin(ctx context.Context, email, password, fullName string) (bool, error) {
	if NormalizeEmail(email) == "" || password == "" {
		return false, errors.New("admin email and password are required")
	}

	_, err := s.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}

	if strings.TrimSpace(fullName) == "" {
		fullName = "Administrador"
	}

	_, err = s.Create(ctx, CreateInput{
		Email:    email,
		Password: password,
		FullName: fullName,
		Active:   true,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		// otra instancia lo creó en paralelo
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
