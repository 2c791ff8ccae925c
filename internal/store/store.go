// Package store holds all SQL data access for the storefront. Every method
// is a thin mapping onto one or a few parameterized statements; the only
// multi-statement write, PersistOrder, runs inside a single transaction.
package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/Mayank9336/TheVarches/internal/database"
)

// ErrNotFound is returned when a point lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write loses to concurrent state: a delete
// blocked by a foreign key, or a conditional status update matching no row.
var ErrConflict = errors.New("conflict")

type Store struct {
	db *database.DB
}

func New(db *database.DB) *Store {
	return &Store{db: db}
}

// MySQL error numbers worth recognizing
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
)

func isMySQLErr(err error, number uint16) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == number
}
