package postgres

import (
	"database/sql"
	"errors"

	"clinica-api/internal/ports/storage"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// constraint => entidad padre, para las FK que se violan al insertar/actualizar.
var fkReferences = map[string]storage.Reference{
	"usuarios_id_medico_fkey":    storage.RefDoctor,
	"consultas_id_medico_fkey":   storage.RefDoctor,
	"consultas_id_paciente_fkey": storage.RefPatient,
}

// translateWrite convierte errores de INSERT/UPDATE en errores de storage.
func translateWrite(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return storage.ErrDuplicate
	case codeForeignKeyViolation:
		if ref, ok := fkReferences[pgErr.ConstraintName]; ok {
			return &storage.MissingReferenceError{Ref: ref}
		}
	}
	return err
}

// translateDelete: en un DELETE la única FK posible es un hijo con RESTRICT.
func translateDelete(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return storage.ErrInUse
	}
	return err
}

// rowsOrNotFound traduce "0 filas afectadas" en ErrNotFound.
func rowsOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
