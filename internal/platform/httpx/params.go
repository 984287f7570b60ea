package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// IDPattern se usa en las rutas ({id:[0-9]+}); ids no numéricos no matchean => 404.
const IDPattern = "{id:[0-9]+}"

// PathID lee el parámetro {id} de la ruta.
func PathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// QueryInt64 lee un entero opcional del query string. Ausente/vacío => nil.
func QueryInt64(r *http.Request, key string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, InvalidInput("El parámetro '" + key + "' debe ser un número entero.")
	}
	return &v, nil
}

// QueryBool: "true", "1", "t" activan el flag; cualquier otro valor lo deja apagado.
func QueryBool(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get(key)))
	return err == nil && v
}
