package consultations

import (
	"strings"
	"time"
)

type Consultation struct {
	ID int64

	DoctorID  int64
	PatientID int64

	Symptoms        string
	Recommendations *string
	Diagnosis       *string

	CreatedAt time.Time

	// Solo lectura: los rellena el repositorio con el nombre completo de cada parte.
	DoctorName  string
	PatientName string
}

const dayLayout = "2006-01-02"

// ParseDay interpreta "YYYY-MM-DD" como medianoche UTC. Cualquier otro formato => nil (sin filtro).
func ParseDay(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := time.ParseInLocation(dayLayout, s, time.UTC)
	if err != nil {
		return nil
	}
	return &d
}
