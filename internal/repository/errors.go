package repository

import (
	"errors"

	"github.com/lib/pq"
)

// IsUndefinedTable checks if the error is a PostgreSQL undefined_table error (42P01).
func IsUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42P01"
	}
	return false
}
