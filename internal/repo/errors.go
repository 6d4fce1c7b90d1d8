package repo

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/apperr"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates that an idempotency record already exists for the
// given (scope, key) pair.
var ErrDuplicate = errors.New("duplicate")

// wrap passes ErrNotFound through untouched and marks every other failure as
// a storage error of op.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return apperr.Storage(op, err)
}
