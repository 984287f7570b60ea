package consultations

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"clinica-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/consultas", func(cr chi.Router) {
		cr.Get("/", listConsultationsHandler(svc))
		cr.Post("/", createConsultationHandler(svc))

		cr.Get("/"+httpx.IDPattern, getConsultationHandler(svc))
		cr.Put("/"+httpx.IDPattern, updateConsultationHandler(svc))
		cr.Delete("/"+httpx.IDPattern, deleteConsultationHandler(svc))
	})
}

type consultationRequest struct {
	IDMedico        int64   `json:"idMedico" validate:"gt=0"`
	IDPaciente      int64   `json:"idPaciente" validate:"gt=0"`
	Sintomas        string  `json:"sintomas" validate:"notblank"`
	Recomendaciones *string `json:"recomendaciones"`
	Diagnostico     *string `json:"diagnostico"`
}

func (req consultationRequest) input() Input {
	return Input{
		DoctorID:        req.IDMedico,
		PatientID:       req.IDPaciente,
		Symptoms:        req.Sintomas,
		Recommendations: req.Recomendaciones,
		Diagnosis:       req.Diagnostico,
	}
}

type consultationResponse struct {
	ID              int64     `json:"id"`
	IDMedico        int64     `json:"idMedico"`
	IDPaciente      int64     `json:"idPaciente"`
	MedicoNombre    string    `json:"medicoNombre"`
	PacienteNombre  string    `json:"pacienteNombre"`
	Sintomas        string    `json:"sintomas"`
	Recomendaciones *string   `json:"recomendaciones"`
	Diagnostico     *string   `json:"diagnostico"`
	FechaCreacion   time.Time `json:"fechaCreacion"`
}

// listConsultationsHandler godoc
// @Summary  Listar consultas (id descendente)
// @Tags     consultas
// @Produce  json
// @Param    top        query int    false "máximo de resultados; 0 o negativo => lista vacía"
// @Param    idMedico   query int    false "filtrar por médico"
// @Param    idPaciente query int    false "filtrar por paciente"
// @Param    fecha      query string false "día de creación YYYY-MM-DD (UTC)"
// @Success  200 {array}  consultationResponse
// @Failure  400 {object} httpx.MessageResponse
// @Security Bearer
// @Router   /consultas [get]
func listConsultationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseListFilter(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]consultationResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toConsultationResponse(c))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getConsultationHandler godoc
// @Summary  Obtener consulta
// @Tags     consultas
// @Produce  json
// @Param    id path int true "id de la consulta"
// @Success  200 {object} consultationResponse
// @Failure  404
// @Security Bearer
// @Router   /consultas/{id} [get]
func getConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.PathID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toConsultationResponse(c))
	}
}

// createConsultationHandler godoc
// @Summary  Crear consulta
// @Tags     consultas
// @Accept   json
// @Produce  json
// @Param    body body consultationRequest true "consulta"
// @Success  201 {object} consultationResponse
// @Failure  400 {object} httpx.MessageResponse
// @Security Bearer
// @Router   /consultas [post]
func createConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req consultationRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		c, err := svc.Create(r.Context(), req.input())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.Created(w, fmt.Sprintf("/api/consultas/%d", c.ID), toConsultationResponse(c))
	}
}

// updateConsultationHandler godoc
// @Summary  Actualizar consulta (reemplazo completo)
// @Tags     consultas
// @Accept   json
// @Param    id   path int                 true "id de la consulta"
// @Param    body body consultationRequest true "consulta"
// @Success  204
// @Failure  400 {object} httpx.MessageResponse
// @Failure  404
// @Security Bearer
// @Router   /consultas/{id} [put]
func updateConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.PathID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req consultationRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		if err := svc.Update(r.Context(), id, req.input()); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteConsultationHandler godoc
// @Summary  Eliminar consulta
// @Tags     consultas
// @Param    id path int true "id de la consulta"
// @Success  204
// @Failure  404
// @Security Bearer
// @Router   /consultas/{id} [delete]
func deleteConsultationHandler(svc *Service) http.HandlerFunc {
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

func parseListFilter(r *http.Request) (ListFilter, error) {
	var f ListFilter

	if raw := strings.TrimSpace(r.URL.Query().Get("top")); raw != "" {
		top, err := strconv.Atoi(raw)
		if err != nil {
			return ListFilter{}, httpx.InvalidInput("El parámetro 'top' debe ser un número entero.")
		}
		f.Top = &top
	}

	var err error
	if f.DoctorID, err = httpx.QueryInt64(r, "idMedico"); err != nil {
		return ListFilter{}, err
	}
	if f.PatientID, err = httpx.QueryInt64(r, "idPaciente"); err != nil {
		return ListFilter{}, err
	}

	// fecha mal formada no es error: simplemente no filtra.
	f.Day = ParseDay(r.URL.Query().Get("fecha"))
	return f, nil
}

func toConsultationResponse(c Consultation) consultationResponse {
	return consultationResponse{
		ID:              c.ID,
		IDMedico:        c.DoctorID,
		IDPaciente:      c.PatientID,
		MedicoNombre:    c.DoctorName,
		PacienteNombre:  c.PatientName,
		Sintomas:        c.Symptoms,
		Recomendaciones: c.Recommendations,
		Diagnostico:     c.Diagnosis,
		FechaCreacion:   c.CreatedAt,
	}
}
