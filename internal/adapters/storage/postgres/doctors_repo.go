package postgres

import (
	"context"
	"database/sql"
	"errors"

	"clinica-api/internal/domain/doctors"
	"clinica-api/internal/ports/storage"
)

type DoctorsRepo struct {
	db *sql.DB
}

func NewDoctorsRepo(db *sql.DB) *DoctorsRepo {
	return &DoctorsRepo{db: db}
}

const doctorColumns = `
	id,
	primer_nombre, segundo_nombre, apellido_paterno, apellido_materno,
	cedula, telefono, especialidad, email,
	activo, fecha_creacion`

func (r *DoctorsRepo) Create(ctx context.Context, d doctors.Doctor) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medicos (
			primer_nombre, segundo_nombre, apellido_paterno, apellido_materno,
			cedula, telefono, especialidad, email,
			activo, fecha_creacion
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`,
		d.FirstName,
		d.MiddleName,
		d.PaternalSurname,
		d.MaternalSurname,
		d.LicenseID,
		d.Phone,
		d.Specialty,
		d.Email,
		d.Active,
		d.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, translateWrite(err)
	}
	return id, nil
}

func (r *DoctorsRepo) GetByID(ctx context.Context, id int64) (doctors.Doctor, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+doctorColumns+` FROM medicos WHERE id = $1`, id)

	d, err := scanDoctor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return doctors.Doctor{}, storage.ErrNotFound
		}
		return doctors.Doctor{}, err
	}
	return d, nil
}

func (r *DoctorsRepo) List(ctx context.Context, f doctors.ListFilter) ([]doctors.Doctor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+doctorColumns+`
		FROM medicos
		WHERE ($1 = FALSE OR activo = TRUE)
		ORDER BY id ASC
	`, f.OnlyActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]doctors.Doctor, 0)
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DoctorsRepo) Update(ctx context.Context, d doctors.Doctor) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medicos
		SET
			primer_nombre = $2,
			segundo_nombre = $3,
			apellido_paterno = $4,
			apellido_materno = $5,
			cedula = $6,
			telefono = $7,
			especialidad = $8,
			email = $9,
			activo = $10
		WHERE id = $1
	`,
		d.ID,
		d.FirstName,
		d.MiddleName,
		d.PaternalSurname,
		d.MaternalSurname,
		d.LicenseID,
		d.Phone,
		d.Specialty,
		d.Email,
		d.Active,
	)
	if err != nil {
		return translateWrite(err)
	}
	return rowsOrNotFound(res)
}

// Delete: usuarios_id_medico_fkey (RESTRICT) => ErrInUse; las consultas caen por CASCADE.
func (r *DoctorsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medicos WHERE id = $1`, id)
	if err != nil {
		return translateDelete(err)
	}
	return rowsOrNotFound(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDoctor(s rowScanner) (doctors.Doctor, error) {
	var d doctors.Doctor
	var middle, maternal sql.NullString
	if err := s.Scan(
		&d.ID,
		&d.FirstName,
		&middle,
		&d.PaternalSurname,
		&maternal,
		&d.LicenseID,
		&d.Phone,
		&d.Specialty,
		&d.Email,
		&d.Active,
		&d.CreatedAt,
	); err != nil {
		return doctors.Doctor{}, err
	}
	d.MiddleName = fromNullString(middle)
	d.MaternalSurname = fromNullString(maternal)
	return d, nil
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
