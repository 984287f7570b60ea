package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"clinica-api/internal/domain/consultations"
	"clinica-api/internal/domain/names"
	"clinica-api/internal/ports/storage"
)

type ConsultationsRepo struct {
	db *sql.DB
}

func NewConsultationsRepo(db *sql.DB) *ConsultationsRepo {
	return &ConsultationsRepo{db: db}
}

// Los nombres salen del JOIN; se arman en Go igual que en el resto del dominio.
const consultationSelect = `
	SELECT
		c.id, c.id_medico, c.id_paciente,
		c.sintomas, c.recomendaciones, c.diagnostico,
		c.fecha_creacion,
		m.primer_nombre, m.segundo_nombre, m.apellido_paterno, m.apellido_materno,
		p.primer_nombre, p.segundo_nombre, p.apellido_paterno, p.apellido_materno
	FROM consultas c
	JOIN medicos m ON m.id = c.id_medico
	JOIN pacientes p ON p.id = c.id_paciente`

// Create es un único INSERT: las FK de consultas rechazan médico/paciente inexistentes.
func (r *ConsultationsRepo) Create(ctx context.Context, c consultations.Consultation) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO consultas (
			id_medico, id_paciente,
			sintomas, recomendaciones, diagnostico,
			fecha_creacion
		) VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		c.DoctorID,
		c.PatientID,
		c.Symptoms,
		c.Recommendations,
		c.Diagnosis,
		c.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, translateWrite(err)
	}
	return id, nil
}

func (r *ConsultationsRepo) GetByID(ctx context.Context, id int64) (consultations.Consultation, error) {
	row := r.db.QueryRowContext(ctx, consultationSelect+` WHERE c.id = $1`, id)

	c, err := scanConsultation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return consultations.Consultation{}, storage.ErrNotFound
		}
		return consultations.Consultation{}, err
	}
	return c, nil
}

func (r *ConsultationsRepo) List(ctx context.Context, f consultations.ListFilter) ([]consultations.Consultation, error) {
	query, args := buildListQuery(f)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]consultations.Consultation, 0)
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func buildListQuery(f consultations.ListFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.DoctorID != nil {
		add("c.id_medico = $%d", *f.DoctorID)
	}
	if f.PatientID != nil {
		add("c.id_paciente = $%d", *f.PatientID)
	}
	if f.Day != nil {
		add("c.fecha_creacion >= $%d", *f.Day)
		add("c.fecha_creacion < $%d", f.Day.Add(24*time.Hour))
	}

	var b strings.Builder
	b.WriteString(consultationSelect)
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY c.id DESC")
	if f.Top != nil {
		args = append(args, *f.Top)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	return b.String(), args
}

func (r *ConsultationsRepo) Update(ctx context.Context, c consultations.Consultation) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE consultas
		SET
			id_medico = $2,
			id_paciente = $3,
			sintomas = $4,
			recomendaciones = $5,
			diagnostico = $6
		WHERE id = $1
	`,
		c.ID,
		c.DoctorID,
		c.PatientID,
		c.Symptoms,
		c.Recommendations,
		c.Diagnosis,
	)
	if err != nil {
		return translateWrite(err)
	}
	return rowsOrNotFound(res)
}

func (r *ConsultationsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM consultas WHERE id = $1`, id)
	if err != nil {
		return translateDelete(err)
	}
	return rowsOrNotFound(res)
}

func scanConsultation(s rowScanner) (consultations.Consultation, error) {
	var c consultations.Consultation
	var recommendations, diagnosis sql.NullString
	var dFirst, dPaternal, pFirst, pPaternal string
	var dMiddle, dMaternal, pMiddle, pMaternal sql.NullString

	if err := s.Scan(
		&c.ID,
		&c.DoctorID,
		&c.PatientID,
		&c.Symptoms,
		&recommendations,
		&diagnosis,
		&c.CreatedAt,
		&dFirst, &dMiddle, &dPaternal, &dMaternal,
		&pFirst, &pMiddle, &pPaternal, &pMaternal,
	); err != nil {
		return consultations.Consultation{}, err
	}

	c.Recommendations = fromNullString(recommendations)
	c.Diagnosis = fromNullString(diagnosis)
	c.DoctorName = names.Full(dFirst, fromNullString(dMiddle), dPaternal, fromNullString(dMaternal))
	c.PatientName = names.Full(pFirst, fromNullString(pMiddle), pPaternal, fromNullString(pMaternal))
	return c, nil
}
