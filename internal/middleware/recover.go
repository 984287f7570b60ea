package middleware

import (
	"net/http"
	"runtime/debug"

	"clinica-api/internal/platform/httpx"
	"clinica-api/internal/platform/logger"
)

// Recover convierte un panic en 500 JSON y lo loguea con el stack.
// Va después de RequestLogger para tener request_id en el log.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered", map[string]any{
				"panic": rec,
				"stack": string(debug.Stack()),
			})
			httpx.WriteMessage(w, http.StatusInternalServerError, "Ocurrió un error inesperado.")
		}()

		next.ServeHTTP(w, r)
	})
}
