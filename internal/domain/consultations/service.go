package consultations

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
	DoctorID        int64
	PatientID       int64
	Symptoms        string
	Recommendations *string
	Diagnosis       *string
}

// Create persiste y relee para devolver los nombres de médico y paciente.
func (s *Service) Create(ctx context.Context, in Input) (Consultation, error) {
	c := Consultation{CreatedAt: s.now().UTC()}
	apply(&c, in)

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return Consultation{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Consultation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Consultation, error) {
	if f.Top != nil && *f.Top <= 0 {
		return []Consultation{}, nil
	}
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	apply(&current, in)
	return s.repo.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func apply(c *Consultation, in Input) {
	c.DoctorID = in.DoctorID
	c.PatientID = in.PatientID
	c.Symptoms = strings.TrimSpace(in.Symptoms)
	c.Recommendations = names.Optional(in.Recommendations)
	c.Diagnosis = names.Optional(in.Diagnosis)
}
