// Package storage define los errores comunes que devuelven los adapters
// de persistencia (postgres, memory), independientes del driver.
package storage

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")

	// ErrInUse: el registro no se puede borrar porque otro lo referencia (restrict).
	ErrInUse = errors.New("record is referenced")
)

// Reference identifica la entidad padre de una FK.
type Reference string

const (
	RefDoctor  Reference = "medico"
	RefPatient Reference = "paciente"
)

// MissingReferenceError se devuelve cuando un insert/update apunta a un padre que no existe.
type MissingReferenceError struct {
	Ref Reference
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("missing reference: %s", e.Ref)
}

// MissingReference devuelve la referencia faltante si err (o algo que envuelve) es un MissingReferenceError.
func MissingReference(err error) (Reference, bool) {
	var mre *MissingReferenceError
	if errors.As(err, &mre) {
		return mre.Ref, true
	}
	return "", false
}
