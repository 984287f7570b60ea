package doctors

import (
	"context"
	"strings"
	"time"

	"clinica-api/internal/domain/names"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input son todos los campos mutables (PUT reemplaza todo).
type Input struct {
	FirstName       string
	MiddleName      *string
	PaternalSurname string
	MaternalSurname *string
	LicenseID       string
	Phone           int64
	Specialty       string
	Email           string
	Active          bool
}

func (s *Service) Create(ctx context.Context, in Input) (Doctor, error) {
	d := Doctor{CreatedAt: s.now().UTC()}
	apply(&d, in)

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return Doctor{}, err
	}
	d.ID = id
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Doctor, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Doctor, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Doctor{}, err
	}

	apply(&current, in)
	if err := s.repo.Update(ctx, current); err != nil {
		return Doctor{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func apply(d *Doctor, in Input) {
	d.FirstName = strings.TrimSpace(in.FirstName)
	d.MiddleName = names.Optional(in.MiddleName)
	d.PaternalSurname = strings.TrimSpace(in.PaternalSurname)
	d.MaternalSurname = names.Optional(in.MaternalSurname)
	d.LicenseID = strings.TrimSpace(in.LicenseID)
	d.Phone = in.Phone
	d.Specialty = strings.TrimSpace(in.Specialty)
	d.Email = strings.TrimSpace(in.Email)
	d.Active = in.Active
}
