package apperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// StorageError wraps a failure returned by the database layer together with
// the repository operation that produced it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a *StorageError. A nil err yields nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// StorageClass is the failure class of a storage error.
type StorageClass uint8

const (
	StorageOther StorageClass = iota
	StorageUnique
	StorageForeignKey
	StorageIntegrity
	StoragePermission
)

func (c StorageClass) String() string {
	switch c {
	case StorageUnique:
		return "unique_violation"
	case StorageForeignKey:
		return "foreign_key_violation"
	case StorageIntegrity:
		return "integrity_violation"
	case StoragePermission:
		return "permission_denied"
	default:
		return "other"
	}
}

// SQLite extended result codes surfaced by the pure-Go driver.
const (
	sqliteConstraintCheck      = 275
	sqliteConstraintForeignKey = 787
	sqliteConstraintNotNull    = 1299
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

type sqliteCoder interface{ Code() int }

// Classify inspects the innermost driver error of err. PostgreSQL SQLSTATEs are
// checked first, then GORM's translated sentinels, then SQLite result codes,
// and finally the message text.
func Classify(err error) StorageClass {
	if err == nil {
		return StorageOther
	}

	var pg *pgconn.PgError
	if errors.As(err, &pg) {
		switch {
		case pg.Code == pgerrcode.InsufficientPrivilege:
			return StoragePermission
		case pg.Code == pgerrcode.UniqueViolation:
			return StorageUnique
		case pg.Code == pgerrcode.ForeignKeyViolation:
			return StorageForeignKey
		case pgerrcode.IsIntegrityConstraintViolation(pg.Code):
			return StorageIntegrity
		}
		return StorageOther
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return StorageUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return StorageForeignKey
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return StorageIntegrity
	}

	var sc sqliteCoder
	if errors.As(err, &sc) {
		switch sc.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return StorageUnique
		case sqliteConstraintForeignKey:
			return StorageForeignKey
		case sqliteConstraintCheck, sqliteConstraintNotNull:
			return StorageIntegrity
		}
	}

	msg := strings.ToLower(root(err).Error())
	switch {
	case strings.Contains(msg, "row-level security"), strings.Contains(msg, "permission denied"):
		return StoragePermission
	case strings.Contains(msg, "unique constraint"), strings.Contains(msg, "duplicate key"):
		return StorageUnique
	case strings.Contains(msg, "foreign key"):
		return StorageForeignKey
	case strings.Contains(msg, "constraint failed"), strings.Contains(msg, "violates"):
		return StorageIntegrity
	}
	return StorageOther
}

// isDriverError reports whether err looks like it came out of the database
// layer even though nobody wrapped it with Storage.
func isDriverError(err error) bool {
	var pg *pgconn.PgError
	if errors.As(err, &pg) {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) || errors.Is(err, gorm.ErrInvalidTransaction) {
		return true
	}
	var sc sqliteCoder
	return errors.As(err, &sc)
}

func root(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
