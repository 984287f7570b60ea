package consultations

import (
	"context"
	"time"
)

// ListFilter: Top nil => sin límite, Top <= 0 => lista vacía; Day filtra [Day, Day+24h) en UTC.
type ListFilter struct {
	Top       *int
	DoctorID  *int64
	PatientID *int64
	Day       *time.Time
}

// Matches evalúa todo salvo Top (el repositorio ordena y corta).
func (f ListFilter) Matches(c Consultation) bool {
	if f.DoctorID != nil && c.DoctorID != *f.DoctorID {
		return false
	}
	if f.PatientID != nil && c.PatientID != *f.PatientID {
		return false
	}
	if f.Day != nil {
		from := *f.Day
		to := from.Add(24 * time.Hour)
		at := c.CreatedAt.UTC()
		if at.Before(from) || !at.Before(to) {
			return false
		}
	}
	return true
}

// Repository: Create/Update devuelven *storage.MissingReferenceError si el médico
// o el paciente no existen, sin persistir nada. List ordena por id descendente.
type Repository interface {
	Create(ctx context.Context, c Consultation) (int64, error)
	GetByID(ctx context.Context, id int64) (Consultation, error)
	List(ctx context.Context, f ListFilter) ([]Consultation, error)
	Update(ctx context.Context, c Consultation) error
	Delete(ctx context.Context, id int64) error
}
