package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"clinica-api/internal/platform/httpx"
	"clinica-api/internal/ports/auth"
)

type ctxKey string

const authKey ctxKey = "auth"

type authState struct {
	claims auth.Claims
	err    error
}

// AuthContext:
// - Si viene Bearer token => Verify() y guarda claims o el error de verificación.
// - Sin token => el request sigue sin claims; RequireAuth decide el 401.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" || verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			st := authState{}
			st.claims, st.err = verifier.Verify(r.Context(), token)

			ctx := context.WithValue(r.Context(), authKey, st)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth corta con 401 si no hay claims válidas.
// Token vencido => WWW-Authenticate con error_description para que el cliente limpie la sesión.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st, ok := r.Context().Value(authKey).(authState)
		switch {
		case !ok:
			w.Header().Set("WWW-Authenticate", `Bearer`)
			httpx.WriteMessage(w, http.StatusUnauthorized, "Se requiere autenticación.")
			return
		case errors.Is(st.err, auth.ErrTokenExpired):
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="token expired"`)
			httpx.WriteMessage(w, http.StatusUnauthorized, "La sesión ha expirado.")
			return
		case st.err != nil:
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
			httpx.WriteMessage(w, http.StatusUnauthorized, "Token inválido.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	st, ok := ctx.Value(authKey).(authState)
	if !ok || st.err != nil {
		return auth.Claims{}, false
	}
	return st.claims, true
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
