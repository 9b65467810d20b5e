package repositories

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

func IsUniqueViolationError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgerrcode.UniqueViolation
}

func IsConstraintViolationError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgerrcode.IsIntegrityConstraintViolation(pgxErr.Code)
}

// IsMissingRelationError reports whether the error is an "undefined table"
// or "undefined function" error. Unlike a transient failure, this condition
// never resolves by retrying: the write path is not provisioned.
func IsMissingRelationError(err error) bool {
	var pgxErr *pgconn.PgError
	if !errors.As(err, &pgxErr) {
		return false
	}
	return pgxErr.Code == pgerrcode.UndefinedTable || pgxErr.Code == pgerrcode.UndefinedFunction
}
