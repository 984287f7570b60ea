package users

import (
	"strings"
	"time"
)

// User es una cuenta de acceso. PasswordHash nunca sale en respuestas HTTP.
type User struct {
	ID int64

	Email        string
	PasswordHash string
	FullName     string

	DoctorID *int64 // médico asignado (opcional)

	Active    bool
	CreatedAt time.Time
}

// NormalizeEmail: los correos se guardan y se buscan en minúsculas y sin espacios.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
