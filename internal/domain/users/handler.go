package users

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"clinica-api/internal/platform/httpx"
	"clinica-api/internal/ports/storage"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/usuarios", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc))
		ur.Post("/", createUserHandler(svc))

		ur.Get("/"+httpx.IDPattern, getUserHandler(svc))
		ur.Put("/"+httpx.IDPattern, updateUserHandler(svc))
		ur.Delete("/"+httpx.IDPattern, deleteUserHandler(svc))
	})
}

type createUserRequest struct {
	Correo         string `json:"correo" validate:"required,email"`
	Password       string `json:"password" validate:"notblank,min=8,max=72"`
	NombreCompleto string `json:"nombreCompleto" validate:"notblank"`
	IDMedico       *int64 `json:"idMedico" validate:"omitempty,gt=0"`
	Activo         *bool  `json:"activo"` // omitido => true
}

type updateUserRequest struct {
	Correo         string `json:"correo" validate:"required,email"`
	NombreCompleto string `json:"nombreCompleto" validate:"notblank"`
	IDMedico       *int64 `json:"idMedico" validate:"omitempty,gt=0"`
	Activo         *bool  `json:"activo"`
	Password       string `json:"password" validate:"omitempty,min=8,max=72"` // vacío u omitido conserva la actual
}

// userResponse nunca incluye la contraseña ni su hash.
type userResponse struct {
	ID             int64     `json:"id"`
	Correo         string    `json:"correo"`
	NombreCompleto string    `json:"nombreCompleto"`
	IDMedico       *int64    `json:"idMedico"`
	Activo         bool      `json:"activo"`
	FechaCreacion  time.Time `json:"fechaCreacion"`
}

// listUsersHandler godoc
// @Summary  Listar usuarios
// @Tags     usuarios
// @Produce  json
// @Success  200 {array} userResponse
// @Security Bearer
// @Router   /usuarios [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getUserHandler godoc
// @Summary  Obtener usuario
// @Tags     usuarios
// @Produce  json
// @Param    id path int true "id del usuario"
// @Success  200 {object} userResponse
// @Failure  404
// @Security Bearer
// @Router   /usuarios/{id} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.PathID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		u, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// createUserHandler godoc
// @Summary  Crear usuario
// @Tags     usuarios
// @Accept   json
// @Produce  json
// @Param    body body createUserRequest true "usuario"
// @Success  201 {object} userResponse
// @Failure  400 {object} httpx.MessageResponse
// @Failure  409 {object} httpx.MessageResponse
// @Security Bearer
// @Router   /usuarios [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		active := true
		if req.Activo != nil {
			active = *req.Activo
		}

		u, err := svc.Create(r.Context(), CreateInput{
			Email:    req.Correo,
			Password: req.Password,
			FullName: req.NombreCompleto,
			DoctorID: req.IDMedico,
			Active:   active,
		})
		if err != nil {
			writeUserError(w, r, err)
			return
		}
		httpx.Created(w, fmt.Sprintf("/api/usuarios/%d", u.ID), toUserResponse(u))
	}
}

// updateUserHandler godoc
// @Summary  Actualizar usuario (reemplazo completo; password opcional)
// @Tags     usuarios
// @Accept   json
// @Produce  json
// @Param    id   path int               true "id del usuario"
// @Param    body body updateUserRequest true "usuario"
// @Success  200 {object} userResponse
// @Failure  400 {object} httpx.MessageResponse
// @Failure  404
// @Failure  409 {object} httpx.MessageResponse
// @Security Bearer
// @Router   /usuarios/{id} [put]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.PathID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req updateUserRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		active := true
		if req.Activo != nil {
			active = *req.Activo
		}

		in := UpdateInput{
			Email:    req.Correo,
			FullName: req.NombreCompleto,
			DoctorID: req.IDMedico,
			Active:   active,
		}
		if req.Password != "" {
			in.Password = &req.Password
		}

		u, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeUserError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// deleteUserHandler godoc
// @Summary  Eliminar usuario
// @Tags     usuarios
// @Param    id path int true "id del usuario"
// @Success  204
// @Failure  404
// @Security Bearer
// @Router   /usuarios/{id} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.PathID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeUserError: correo duplicado y contraseña larga tienen mensaje propio.
func writeUserError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		httpx.WriteMessage(w, http.StatusConflict, "Ya existe un usuario con ese correo.")
		return
	case errors.Is(err, ErrPasswordTooLong):
		httpx.WriteMessage(w, http.StatusBadRequest, fmt.Sprintf("La contraseña no puede superar %d bytes.", MaxPasswordBytes))
		return
	}
	httpx.WriteError(w, r, err)
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:             u.ID,
		Correo:         u.Email,
		NombreCompleto: u.FullName,
		IDMedico:       u.DoctorID,
		Activo:         u.Active,
		FechaCreacion:  u.CreatedAt,
	}
}
