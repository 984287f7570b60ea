package users

import "context"

// Repository: Create/Update devuelven storage.ErrDuplicate si el correo ya existe
// y *storage.MissingReferenceError si DoctorID no existe.
type Repository interface {
	Create(ctx context.Context, u User) (int64, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id int64) error
}
