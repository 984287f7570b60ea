package patients

import "context"

type ListFilter struct {
	OnlyActive bool
}

// Repository: Delete borra en cascada las consultas del paciente.
type Repository interface {
	Create(ctx context.Context, p Patient) (int64, error)
	GetByID(ctx context.Context, id int64) (Patient, error)
	List(ctx context.Context, f ListFilter) ([]Patient, error)
	Update(ctx context.Context, p Patient) error
	Delete(ctx context.Context, id int64) error
}
