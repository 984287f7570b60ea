package doctors

import (
	"fmt"
	"net/http"
	"time"

	"clinica-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medicos", func(mr chi.Router) {
		mr.Get("/", listDoctorsHandler(svc))
		mr.Post("/", createDoctorHandler(svc))

		mr.Get("/"+httpx.IDPattern, getDoctorHandler(svc))
		mr.Put("/"+httpx.IDPattern, updateDoctorHandler(svc))
		mr.Delete("/"+httpx.IDPattern, deleteDoctorHandler(svc))
	})
}

type doctorRequest struct {
	PrimerNombre    string  `json:"primerNombre" validate:"notblank"`
	SegundoNombre   *string `json:"segundoNombre"`
	ApellidoPaterno string  `json:"apellidoPaterno" validate:"notblank"`
	ApellidoMaterno *string `json:"apellidoMaterno"`
	Cedula          string  `json:"cedula" validate:"notblank"`
	Telefono        int64   `json:"telefono" validate:"gte=0"`
	Especialidad    string  `json:"especialidad" validate:"notblank"`
	Email           string  `json:"email" validate:"required,email"`
	Activo          *bool   `json:"activo"` // omitido => true
}

func (req doctorRequest) input() Input {
	active := true
	if req.Activo != nil {
		active = *req.Activo
	}
	return Input{
		FirstName:       req.PrimerNombre,
		MiddleName:      req.SegundoNombre,
		PaternalSurname: req.ApellidoPaterno,
		MaternalSurname: req.ApellidoMaterno,
		LicenseID:       req.Cedula,
		Phone:           req.Telefono,
		Specialty:       req.Especialidad,
		Email:           req.Email,
		Active:          active,
	}
}

// doctorResponse es el detalle (GET por id, POST).
type doctorResponse struct {
	ID              int64     `json:"id"`
	PrimerNombre    string    `json:"primerNombre"`
	SegundoNombre   *string   `json:"segundoNombre"`
	ApellidoPaterno string    `json:"apellidoPaterno"`
	ApellidoMaterno *string   `json:"apellidoMaterno"`
	Cedula          string    `json:"cedula"`
	Telefono        int64     `json:"telefono"`
	Especialidad    string    `json:"especialidad"`
	Email           string    `json:"email"`
	Activo          bool      `json:"activo"`
	NombreCompleto  string    `json:"nombreCompleto"`
	FechaCreacion   time.Time `json:"fechaCreacion"`
}

// doctorListItem es la proyección del listado (sin cédula ni fecha).
type doctorListItem struct {
	ID              int64   `json:"id"`
	PrimerNombre    string  `json:"primerNombre"`
	SegundoNombre   *string `json:"segundoNombre"`
	ApellidoPaterno string  `json:"apellidoPaterno"`
	ApellidoMaterno *string `json:"apellidoMaterno"`
	Especialidad    string  `json:"especialidad"`
	Email           string  `json:"email"`
	Telefono        int64   `json:"telefono"`
	Activo          bool    `json:"activo"`
	NombreCompleto  string  `json:"nombreCompleto"`
}

// listDoctorsHandler godoc
// @Summary  Listar médicos
// @Tags     medicos
// @Produce  json
// @Param    soloActivos query bool false "solo médicos activos"
// @Success  200 {array} doctorListItem
// @Failure  401 {object} httpx.MessageResponse
// @Security Bearer
// @Router   /medicos [get]
func listDoctorsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), ListFilter{OnlyActive: httpx.QueryBool(r, "soloActivos")})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]doctorListItem, 0, len(items))
		for _, d := range items {
			out = append(out, toDoctorListItem(d))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getDoctorHandler godoc
// @Summary  Obtener médico
// @Tags     medicos
// @Produce  json
// @Param    id path int true "id del médico"
// @Success  200 {object} doctorResponse
// @Failure  404
// @Security Bearer
// @Router   /medicos/{id} [get]
func getDoctorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.PathID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoctorResponse(d))
	}
}

// createDoctorHandler godoc
// @Summary  Registrar médico
// @Tags     medicos
// @Accept   json
// @Produce  json
// @Param    body body doctorRequest true "médico"
// @Success  201 {object} doctorResponse
// @Failure  400 {object} httpx.MessageResponse
// @Security Bearer
// @Router   /medicos [post]
func createDoctorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req doctorRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		d, err := svc.Create(r.Context(), req.input())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.Created(w, fmt.Sprintf("/api/medicos/%d", d.ID), toDoctorResponse(d))
	}
}

// updateDoctorHandler godoc
// @Summary  Actualizar médico (reemplazo completo)
// @Tags     medicos
// @Accept   json
// @Param    id   path int           true "id del médico"
// @Param    body body doctorRequest true "médico"
// @Success  204
// @Failure  400 {object} httpx.MessageResponse
// @Failure  404
// @Security Bearer
// @Router   /medicos/{id} [put]
func updateDoctorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.PathID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req doctorRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		if _, err := svc.Update(r.Context(), id, req.input()); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteDoctorHandler godoc
// @Summary  Eliminar médico (borra sus consultas; falla si tiene usuarios asignados)
// @Tags     medicos
// @Param    id path int true "id del médico"
// @Success  204
// @Failure  404
// @Failure  409 {object} httpx.MessageResponse
// @Security Bearer
// @Router   /medicos/{id} [delete]
func deleteDoctorHandler(svc *Service) http.HandlerFunc {
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

func toDoctorResponse(d Doctor) doctorResponse {
	return doctorResponse{
		ID:              d.ID,
		PrimerNombre:    d.FirstName,
		SegundoNombre:   d.MiddleName,
		ApellidoPaterno: d.PaternalSurname,
		ApellidoMaterno: d.MaternalSurname,
		Cedula:          d.LicenseID,
		Telefono:        d.Phone,
		Especialidad:    d.Specialty,
		Email:           d.Email,
		Activo:          d.Active,
		NombreCompleto:  d.FullName(),
		FechaCreacion:   d.CreatedAt,
	}
}

func toDoctorListItem(d Doctor) doctorListItem {
	return doctorListItem{
		ID:              d.ID,
		PrimerNombre:    d.FirstName,
		SegundoNombre:   d.MiddleName,
		ApellidoPaterno: d.PaternalSurname,
		ApellidoMaterno: d.MaternalSurname,
		Especialidad:    d.Specialty,
		Email:           d.Email,
		Telefono:        d.Phone,
		Activo:          d.Active,
		NombreCompleto:  d.FullName(),
	}
}
