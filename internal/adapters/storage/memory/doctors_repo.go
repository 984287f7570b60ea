package memory

import (
	"context"
	"sort"

	"clinica-api/internal/domain/consultations"
	"clinica-api/internal/domain/doctors"
	"clinica-api/internal/ports/storage"
)

type doctorRepo struct {
	s *Store
}

func NewDoctorRepo(s *Store) doctors.Repository {
	return &doctorRepo{s: s}
}

func (r *doctorRepo) Create(ctx context.Context, d doctors.Doctor) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.seqDoctors++
	d.ID = r.s.seqDoctors
	r.s.doctors[d.ID] = d
	return d.ID, nil
}

func (r *doctorRepo) GetByID(ctx context.Context, id int64) (doctors.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.doctors[id]
	if !ok {
		return doctors.Doctor{}, storage.ErrNotFound
	}
	return d, nil
}

func (r *doctorRepo) List(ctx context.Context, f doctors.ListFilter) ([]doctors.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]doctors.Doctor, 0, len(r.s.doctors))
	for _, d := range r.s.doctors {
		if f.OnlyActive && !d.Active {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *doctorRepo) Update(ctx context.Context, d doctors.Doctor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.doctors[d.ID]
	if !ok {
		return storage.ErrNotFound
	}
	d.CreatedAt = current.CreatedAt
	r.s.doctors[d.ID] = d
	return nil
}

func (r *doctorRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.doctors[id]; !ok {
		return storage.ErrNotFound
	}
	if r.s.doctorReferenced(id) {
		return storage.ErrInUse
	}

	r.s.deleteConsultationsWhere(func(c consultations.Consultation) bool { return c.DoctorID == id })
	delete(r.s.doctors, id)
	return nil
}
