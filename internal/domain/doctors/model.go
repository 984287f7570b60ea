package doctors

import (
	"time"

	"clinica-api/internal/domain/names"
)

// Doctor es un médico de la clínica. Puede tener usuarios asignados y consultas.
type Doctor struct {
	ID int64

	FirstName       string
	MiddleName      *string
	PaternalSurname string
	MaternalSurname *string

	LicenseID string // cédula profesional
	Phone     int64
	Specialty string
	Email     string

	Active    bool
	CreatedAt time.Time
}

func (d Doctor) FullName() string {
	return names.Full(d.FirstName, d.MiddleName, d.PaternalSurname, d.MaternalSurname)
}
