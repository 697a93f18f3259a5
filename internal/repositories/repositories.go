// Package repositories contains the sqlx persistence layer. Repositories
// come in read/write pairs; writers resolve a request-scoped transaction
// from the context so paired writes commit or roll back as one unit.
package repositories

import (
	"database/sql"
	"errors"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
