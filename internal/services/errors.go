// Package services holds the business rules of the career platform: users and
// their profiles, links and documents, and the organizations and jobs of the
// opportunities side.
//
// Services report predictable failures as apperr domain variants (for
// example apperr.UserNotFound) and pass storage failures through untouched.
// They never build HTTP responses; the handlers translate every error with
// apperr.Translate at the boundary.
package services

import (
	"errors"

	"gorm.io/gorm"
)

// notFound reports whether a repository call found no row.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// orNotFound replaces a not-found repository error with the domain variant
// produced by nf. Every other error is returned unchanged.
func orNotFound(err error, nf func() error) error {
	if notFound(err) {
		return nf()
	}
	return err
}
