package session

import (
	"errors"
	"net/http"
	"time"

	"clinica-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

const invalidCredentialsMessage = "Usuario o contraseña incorrectos."

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/login", loginHandler(svc))
}

type loginRequest struct {
	Correo   string `json:"correo" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	ID             int64     `json:"id"`
	NombreCompleto string    `json:"nombreCompleto"`
	Correo         string    `json:"correo"`
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// loginHandler godoc
// @Summary  Iniciar sesión
// @Tags     sesion
// @Accept   json
// @Produce  json
// @Param    body body     loginRequest true "credenciales"
// @Success  200  {object} loginResponse
// @Failure  400  {object} httpx.MessageResponse
// @Failure  401  {object} httpx.MessageResponse
// @Router   /login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		res, err := svc.Login(r.Context(), req.Correo, req.Password)
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.WriteMessage(w, http.StatusUnauthorized, invalidCredentialsMessage)
			return
		}
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, loginResponse{
			ID:             res.UserID,
			NombreCompleto: res.FullName,
			Correo:         res.Email,
			Token:          res.Token,
			ExpiresAt:      res.ExpiresAt,
		})
	}
}
