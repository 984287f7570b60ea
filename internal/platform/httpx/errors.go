package httpx

import (
	"errors"
	"net/http"

	"clinica-api/internal/platform/logger"
	"clinica-api/internal/ports/storage"
)

// ValidationError es un error de entrada del cliente (400 con mensaje legible).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// InvalidInput crea un ValidationError.
func InvalidInput(msg string) error {
	return &ValidationError{Message: msg}
}

var referenceMessages = map[storage.Reference]string{
	storage.RefDoctor:  "El médico especificado no existe.",
	storage.RefPatient: "El paciente especificado no existe.",
}

// WriteError traduce errores de dominio/storage a status HTTP.
// Los no reconocidos se loguean y salen como 500 genérico.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		WriteMessage(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, storage.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, storage.ErrDuplicate):
		WriteMessage(w, http.StatusConflict, "Ya existe un registro con esos datos.")
	case errors.Is(err, storage.ErrInUse):
		WriteMessage(w, http.StatusConflict, "El registro está referenciado por otros registros.")
	default:
		if ref, ok := storage.MissingReference(err); ok {
			msg, known := referenceMessages[ref]
			if !known {
				msg = "La referencia especificada no existe."
			}
			WriteMessage(w, http.StatusBadRequest, msg)
			return
		}

		logger.FromContext(r.Context()).Error("unhandled error", map[string]any{
			"err":    err,
			"method": r.Method,
			"path":   r.URL.Path,
		})
		WriteMessage(w, http.StatusInternalServerError, "Ocurrió un error inesperado.")
	}
}
