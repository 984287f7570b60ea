package postgres

import (
	"context"
	"database/sql"
	"errors"

	"clinica-api/internal/domain/users"
	"clinica-api/internal/ports/storage"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, correo, password_hash, nombre_completo, id_medico, activo, fecha_creacion`

func (r *UsersRepo) Create(ctx context.Context, u users.User) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO usuarios (
			correo, password_hash, nombre_completo, id_medico, activo, fecha_creacion
		) VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		u.Email,
		u.PasswordHash,
		u.FullName,
		u.DoctorID,
		u.Active,
		u.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, translateWrite(err)
	}
	return id, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE correo = $1`, users.NormalizeEmail(email))
}

func (r *UsersRepo) getOne(ctx context.Context, query string, arg any) (users.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, storage.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM usuarios ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE usuarios
		SET
			correo = $2,
			password_hash = $3,
			nombre_completo = $4,
			id_medico = $5,
			activo = $6
		WHERE id = $1
	`,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.FullName,
		u.DoctorID,
		u.Active,
	)
	if err != nil {
		return translateWrite(err)
	}
	return rowsOrNotFound(res)
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return translateDelete(err)
	}
	return rowsOrNotFound(res)
}

func scanUser(s rowScanner) (users.User, error) {
	var u users.User
	var doctorID sql.NullInt64
	if err := s.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&doctorID,
		&u.Active,
		&u.CreatedAt,
	); err != nil {
		return users.User{}, err
	}
	if doctorID.Valid {
		v := doctorID.Int64
		u.DoctorID = &v
	}
	return u, nil
}
