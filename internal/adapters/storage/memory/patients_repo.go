package memory

import (
	"context"
	"sort"

	"clinica-api/internal/domain/consultations"
	"clinica-api/internal/domain/patients"
	"clinica-api/internal/ports/storage"
)

type patientRepo struct {
	s *Store
}

func NewPatientRepo(s *Store) patients.Repository {
	return &patientRepo{s: s}
}

func (r *patientRepo) Create(ctx context.Context, p patients.Patient) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.seqPatients++
	p.ID = r.s.seqPatients
	r.s.patients[p.ID] = p
	return p.ID, nil
}

func (r *patientRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.patients[id]
	if !ok {
		return patients.Patient{}, storage.ErrNotFound
	}
	return p, nil
}

func (r *patientRepo) List(ctx context.Context, f patients.ListFilter) ([]patients.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]patients.Patient, 0, len(r.s.patients))
	for _, p := range r.s.patients {
		if f.OnlyActive && !p.Active {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *patientRepo) Update(ctx context.Context, p patients.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.patients[p.ID]
	if !ok {
		return storage.ErrNotFound
	}
	p.CreatedAt = current.CreatedAt
	r.s.patients[p.ID] = p
	return nil
}

func (r *patientRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.patients[id]; !ok {
		return storage.ErrNotFound
	}

	r.s.deleteConsultationsWhere(func(c consultations.Consultation) bool { return c.PatientID == id })
	delete(r.s.patients, id)
	return nil
}
