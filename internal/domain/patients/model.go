package patients

import (
	"time"

	"clinica-api/internal/domain/names"
)

type Patient struct {
	ID int64

	FirstName       string
	MiddleName      *string
	PaternalSurname string
	MaternalSurname *string

	Phone string

	Active    bool
	CreatedAt time.Time
}

func (p Patient) FullName() string {
	return names.Full(p.FirstName, p.MiddleName, p.PaternalSurname, p.MaternalSurname)
}
