package memory

import (
	"context"
	"sort"

	"clinica-api/internal/domain/consultations"
	"clinica-api/internal/ports/storage"
)

type consultationRepo struct {
	s *Store
}

func NewConsultationRepo(s *Store) consultations.Repository {
	return &consultationRepo{s: s}
}

func (r *consultationRepo) Create(ctx context.Context, c consultations.Consultation) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefs(c); err != nil {
		return 0, err
	}

	r.s.seqConsultations++
	c.ID = r.s.seqConsultations
	c.DoctorName, c.PatientName = "", ""
	r.s.consultations[c.ID] = c
	return c.ID, nil
}

func (r *consultationRepo) GetByID(ctx context.Context, id int64) (consultations.Consultation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.consultations[id]
	if !ok {
		return consultations.Consultation{}, storage.ErrNotFound
	}
	return r.withNames(c), nil
}

func (r *consultationRepo) List(ctx context.Context, f consultations.ListFilter) ([]consultations.Consultation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]consultations.Consultation, 0)
	for _, c := range r.s.consultations {
		if f.Matches(c) {
			out = append(out, r.withNames(c))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if f.Top != nil {
		if n := max(*f.Top, 0); len(out) > n {
			out = out[:n]
		}
	}
	return out, nil
}

func (r *consultationRepo) Update(ctx context.Context, c consultations.Consultation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.consultations[c.ID]
	if !ok {
		return storage.ErrNotFound
	}
	if err := r.checkRefs(c); err != nil {
		return err
	}

	c.CreatedAt = current.CreatedAt
	c.DoctorName, c.PatientName = "", ""
	r.s.consultations[c.ID] = c
	return nil
}

func (r *consultationRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.consultations[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.s.consultations, id)
	return nil
}

// checkRefs replica las FK de consultas. Requiere s.mu tomado.
func (r *consultationRepo) checkRefs(c consultations.Consultation) error {
	if _, ok := r.s.doctors[c.DoctorID]; !ok {
		return &storage.MissingReferenceError{Ref: storage.RefDoctor}
	}
	if _, ok := r.s.patients[c.PatientID]; !ok {
		return &storage.MissingReferenceError{Ref: storage.RefPatient}
	}
	return nil
}

func (r *consultationRepo) withNames(c consultations.Consultation) consultations.Consultation {
	if d, ok := r.s.doctors[c.DoctorID]; ok {
		c.DoctorName = d.FullName()
	}
	if p, ok := r.s.patients[c.PatientID]; ok {
		c.PatientName = p.FullName()
	}
	return c
}
