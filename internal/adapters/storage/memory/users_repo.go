package memory

import (
	"context"
	"sort"

	"clinica-api/internal/domain/users"
	"clinica-api/internal/ports/storage"
)

type userRepo struct {
	s *Store
}

func NewUserRepo(s *Store) users.Repository {
	return &userRepo{s: s}
}

func (r *userRepo) Create(ctx context.Context, u users.User) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkWrite(u); err != nil {
		return 0, err
	}

	r.s.seqUsers++
	u.ID = r.s.seqUsers
	r.s.users[u.ID] = u
	return u.ID, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return users.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	email = users.NormalizeEmail(email)
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, storage.ErrNotFound
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]users.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.users[u.ID]
	if !ok {
		return storage.ErrNotFound
	}
	if err := r.checkWrite(u); err != nil {
		return err
	}

	u.CreatedAt = current.CreatedAt
	r.s.users[u.ID] = u
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

// checkWrite replica usuarios_correo_key y usuarios_id_medico_fkey. Requiere s.mu tomado.
func (r *userRepo) checkWrite(u users.User) error {
	for _, other := range r.s.users {
		if other.ID != u.ID && other.Email == u.Email {
			return storage.ErrDuplicate
		}
	}
	if u.DoctorID != nil {
		if _, ok := r.s.doctors[*u.DoctorID]; !ok {
			return &storage.MissingReferenceError{Ref: storage.RefDoctor}
		}
	}
	return nil
}
