package patients

import (
	"fmt"
	"net/http"
	"time"

	"clinica-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pacientes", func(pr chi.Router) {
		pr.Get("/", listPatientsHandler(svc))
		pr.Post("/", createPatientHandler(svc))

		pr.Get("/"+httpx.IDPattern, getPatientHandler(svc))
		pr.Put("/"+httpx.IDPattern, updatePatientHandler(svc))
		pr.Delete("/"+httpx.IDPattern, deletePatientHandler(svc))
	})
}

type patientRequest struct {
	PrimerNombre    string  `json:"primerNombre" validate:"notblank"`
	SegundoNombre   *string `json:"segundoNombre"`
	ApellidoPaterno string  `json:"apellidoPaterno" validate:"notblank"`
	ApellidoMaterno *string `json:"apellidoMaterno"`
	Telefono        string  `json:"telefono" validate:"notblank,max=20"`
	Activo          *bool   `json:"activo"` // omitido => true
}

func (req patientRequest) input() Input {
	active := true
	if req.Activo != nil {
		active = *req.Activo
	}
	return Input{
		FirstName:       req.PrimerNombre,
		MiddleName:      req.SegundoNombre,
		PaternalSurname: req.ApellidoPaterno,
		MaternalSurname: req.ApellidoMaterno,
		Phone:           req.Telefono,
		Active:          active,
	}
}

type patientResponse struct {
	ID              int64     `json:"id"`
	PrimerNombre    string    `json:"primerNombre"`
	SegundoNombre   *string   `json:"segundoNombre"`
	ApellidoPaterno string    `json:"apellidoPaterno"`
	ApellidoMaterno *string   `json:"apellidoMaterno"`
	Telefono        string    `json:"telefono"`
	Activo          bool      `json:"activo"`
	NombreCompleto  string    `json:"nombreCompleto"`
	FechaCreacion   time.Time `json:"fechaCreacion"`
}

type patientListItem struct {
	ID              int64   `json:"id"`
	PrimerNombre    string  `json:"primerNombre"`
	SegundoNombre   *string `json:"segundoNombre"`
	ApellidoPaterno string  `json:"apellidoPaterno"`
	ApellidoMaterno *string `json:"apellidoMaterno"`
	Telefono        string  `json:"telefono"`
	Activo          bool    `json:"activo"`
	NombreCompleto  string  `json:"nombreCompleto"`
}

// listPatientsHandler godoc
// @Summary  Listar pacientes
// @Tags     pacientes
// @Produce  json
// @Param    soloActivos query bool false "solo pacientes activos"
// @Success  200 {array} patientListItem
// @Security Bearer
// @Router   /pacientes [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), ListFilter{OnlyActive: httpx.QueryBool(r, "soloActivos")})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]patientListItem, 0, len(items))
		for _, p := range items {
			out = append(out, patientListItem{
				ID:              p.ID,
				PrimerNombre:    p.FirstName,
				SegundoNombre:   p.MiddleName,
				ApellidoPaterno: p.PaternalSurname,
				ApellidoMaterno: p.MaternalSurname,
				Telefono:        p.Phone,
				Activo:          p.Active,
				NombreCompleto:  p.FullName(),
			})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getPatientHandler godoc
// @Summary  Obtener paciente
// @Tags     pacientes
// @Produce  json
// @Param    id path int true "id del paciente"
// @Success  200 {object} patientResponse
// @Failure  404
// @Security Bearer
// @Router   /pacientes/{id} [get]
func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.PathID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

// createPatientHandler godoc
// @Summary  Registrar paciente
// @Tags     pacientes
// @Accept   json
// @Produce  json
// @Param    body body patientRequest true "paciente"
// @Success  201 {object} patientResponse
// @Failure  400 {object} httpx.MessageResponse
// @Security Bearer
// @Router   /pacientes [post]
func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patientRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.Create(r.Context(), req.input())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.Created(w, fmt.Sprintf("/api/pacientes/%d", p.ID), toPatientResponse(p))
	}
}

// updatePatientHandler godoc
// @Summary  Actualizar paciente (reemplazo completo)
// @Tags     pacientes
// @Accept   json
// @Param    id   path int            true "id del paciente"
// @Param    body body patientRequest true "paciente"
// @Success  204
// @Failure  400 {object} httpx.MessageResponse
// @Failure  404
// @Security Bearer
// @Router   /pacientes/{id} [put]
func updatePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.PathID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req patientRequest
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

// deletePatientHandler godoc
// @Summary  Eliminar paciente (borra sus consultas)
// @Tags     pacientes
// @Param    id path int true "id del paciente"
// @Success  204
// @Failure  404
// @Security Bearer
// @Router   /pacientes/{id} [delete]
func deletePatientHandler(svc *Service) http.HandlerFunc {
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

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:              p.ID,
		PrimerNombre:    p.FirstName,
		SegundoNombre:   p.MiddleName,
		ApellidoPaterno: p.PaternalSurname,
		ApellidoMaterno: p.MaternalSurname,
		Telefono:        p.Phone,
		Activo:          p.Active,
		NombreCompleto:  p.FullName(),
		FechaCreacion:   p.CreatedAt,
	}
}
