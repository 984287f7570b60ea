package doctors

import "context"

type ListFilter struct {
	OnlyActive bool
}

// Repository: Delete debe devolver storage.ErrInUse si algún usuario referencia al médico
// y borrar en cascada sus consultas.
type Repository interface {
	Create(ctx context.Context, d Doctor) (int64, error)
	GetByID(ctx context.Context, id int64) (Doctor, error)
	List(ctx context.Context, f ListFilter) ([]Doctor, error)
	Update(ctx context.Context, d Doctor) error
	Delete(ctx context.Context, id int64) error
}
