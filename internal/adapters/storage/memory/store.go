package memory

import (
	"sync"

	"clinica-api/internal/domain/consultations"
	"clinica-api/internal/domain/doctors"
	"clinica-api/internal/domain/patients"
	"clinica-api/internal/domain/users"
)

// Store guarda todas las tablas bajo un solo mutex para que las reglas
// entre tablas (correo único, FK, restrict y cascada) sean atómicas.
type Store struct {
	mu sync.RWMutex

	doctors       map[int64]doctors.Doctor
	patients      map[int64]patients.Patient
	users         map[int64]users.User
	consultations map[int64]consultations.Consultation

	seqDoctors       int64
	seqPatients      int64
	seqUsers         int64
	seqConsultations int64
}

func NewStore() *Store {
	return &Store{
		doctors:       make(map[int64]doctors.Doctor),
		patients:      make(map[int64]patients.Patient),
		users:         make(map[int64]users.User),
		consultations: make(map[int64]consultations.Consultation),
	}
}

// doctorReferenced: algún usuario apunta al médico (bloquea el borrado).
// Requiere s.mu tomado.
func (s *Store) doctorReferenced(id int64) bool {
	for _, u := range s.users {
		if u.DoctorID != nil && *u.DoctorID == id {
			return true
		}
	}
	return false
}

// deleteConsultationsWhere requiere s.mu tomado en escritura.
func (s *Store) deleteConsultationsWhere(match func(consultations.Consultation) bool) {
	for id, c := range s.consultations {
		if match(c) {
			delete(s.consultations, id)
		}
	}
}
