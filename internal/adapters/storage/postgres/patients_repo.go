package postgres

import (
	"context"
	"database/sql"
	"errors"

	"clinica-api/internal/domain/patients"
	"clinica-api/internal/ports/storage"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

const patientColumns = `
	id,
	primer_nombre, segundo_nombre, apellido_paterno, apellido_materno,
	telefono, activo, fecha_creacion`

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pacientes (
			primer_nombre, segundo_nombre, apellido_paterno, apellido_materno,
			telefono, activo, fecha_creacion
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		p.FirstName,
		p.MiddleName,
		p.PaternalSurname,
		p.MaternalSurname,
		p.Phone,
		p.Active,
		p.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, translateWrite(err)
	}
	return id, nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+patientColumns+` FROM pacientes WHERE id = $1`, id)

	p, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return patients.Patient{}, storage.ErrNotFound
		}
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) List(ctx context.Context, f patients.ListFilter) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+patientColumns+`
		FROM pacientes
		WHERE ($1 = FALSE OR activo = TRUE)
		ORDER BY id ASC
	`, f.OnlyActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PatientsRepo) Update(ctx context.Context, p patients.Patient) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pacientes
		SET
			primer_nombre = $2,
			segundo_nombre = $3,
			apellido_paterno = $4,
			apellido_materno = $5,
			telefono = $6,
			activo = $7
		WHERE id = $1
	`,
		p.ID,
		p.FirstName,
		p.MiddleName,
		p.PaternalSurname,
		p.MaternalSurname,
		p.Phone,
		p.Active,
	)
	if err != nil {
		return translateWrite(err)
	}
	return rowsOrNotFound(res)
}

// Delete: consultas_id_paciente_fkey es CASCADE.
func (r *PatientsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pacientes WHERE id = $1`, id)
	if err != nil {
		return translateDelete(err)
	}
	return rowsOrNotFound(res)
}

func scanPatient(s rowScanner) (patients.Patient, error) {
	var p patients.Patient
	var middle, maternal sql.NullString
	if err := s.Scan(
		&p.ID,
		&p.FirstName,
		&middle,
		&p.PaternalSurname,
		&maternal,
		&p.Phone,
		&p.Active,
		&p.CreatedAt,
	); err != nil {
		return patients.Patient{}, err
	}
	p.MiddleName = fromNullString(middle)
	p.MaternalSurname = fromNullString(maternal)
	return p, nil
}
