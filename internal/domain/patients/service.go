package patients

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

type Input struct {
	FirstName       string
	MiddleName      *string
	PaternalSurname string
	MaternalSurname *string
	Phone           string
	Active          bool
}

func (s *Service) Create(ctx context.Context, in Input) (Patient, error) {
	p := Patient{CreatedAt: s.now().UTC()}
	apply(&p, in)

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Patient{}, err
	}
	p.ID = id
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Patient, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Patient, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Patient{}, err
	}

	apply(&current, in)
	if err := s.repo.Update(ctx, current); err != nil {
		return Patient{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func apply(p *Patient, in Input) {
	p.FirstName = strings.TrimSpace(in.FirstName)
	p.MiddleName = names.Optional(in.MiddleName)
	p.PaternalSurname = strings.TrimSpace(in.PaternalSurname)
	p.MaternalSurname = names.Optional(in.MaternalSurname)
	p.Phone = strings.TrimSpace(in.Phone)
	p.Active = in.Active
}
