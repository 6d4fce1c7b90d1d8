package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// Envelope is the JSON body of every error response.
type Envelope struct {
	Code   Code   `json:"code" example:"USER-DOCUMENT-NF-A01"`
	Error  string `json:"error" example:"Document not found"`
	Detail string `json:"detail" example:"Document with ID 3f0c... does not exist."`
	Status int    `json:"status" example:"404"`
}

// Translation is the outcome of Translate: the envelope for the client, the
// level to log it at, and the internal cause that is logged but never sent.
type Translation struct {
	Envelope Envelope
	Level    zerolog.Level
	Cause    string
}

// Fixed client-facing texts. Driver messages never reach the envelope.
const (
	labelGeneric   = "Internal server error"
	detailGeneric  = "An unexpected error occurred"
	labelValidate  = "Validation Error"
	labelRLS       = "Permission Denied"
	detailRLS      = "You don't have permission to perform this operation. This may be due to database row-level security policies."
	labelUnique    = "Duplicate Entry"
	detailUnique   = "This record already exists. Please use a unique value."
	labelFK        = "Invalid Reference"
	detailFK       = "The referenced record does not exist. Please check the related IDs."
	labelIntegrity = "Database Constraint Violation"
	detailIntegr   = "A database constraint was violated. Please check your data."
	labelDatabase  = "Database Error"
	detailDatabase = "A database operation failed. Please check your data and try again."
)

// Translate maps any error to its client envelope. It is pure: the same error
// always yields the same Translation. Dispatch order is validation, domain
// error, transport error, storage failure, then the generic fallback.
func Translate(err error) Translation {
	if err == nil {
		return fallback("nil error")
	}

	var (
		verr *ValidationError
		derr *Error
		terr *TransportError
		serr *StorageError
		mbe  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &verr) && len(verr.Problems) > 0:
		return Translation{
			Envelope: Envelope{Code: CodeValidation, Error: labelValidate, Detail: verr.Error(), Status: http.StatusUnprocessableEntity},
			Level:    zerolog.WarnLevel,
			Cause:    verr.Error(),
		}

	case errors.As(err, &derr):
		e := lookup(derr.Variant)
		if e.kind == 0 {
			return fallback(fmt.Sprintf("unregistered variant %d", derr.Variant))
		}
		detail := e.render(derr)
		return Translation{
			Envelope: Envelope{Code: e.code, Error: e.label, Detail: detail, Status: e.kind.Status()},
			Level:    zerolog.WarnLevel,
			Cause:    detail,
		}

	case errors.As(err, &terr):
		lvl := zerolog.WarnLevel
		if terr.Status >= http.StatusInternalServerError {
			lvl = zerolog.ErrorLevel
		}
		return Translation{
			Envelope: Envelope{Code: terr.Code, Error: terr.Label, Detail: terr.Detail, Status: terr.Status},
			Level:    lvl,
			Cause:    terr.Detail,
		}

	case errors.As(err, &mbe):
		return Translate(BodyTooLarge(mbe.Limit))

	case errors.As(err, &serr):
		return storage(Classify(serr.Err), err)

	case isDriverError(err):
		return storage(Classify(err), err)
	}
	return fallback(err.Error())
}

func storage(class StorageClass, err error) Translation {
	var env Envelope
	switch class {
	case StoragePermission:
		env = Envelope{Code: CodeDatabaseRLS, Error: labelRLS, Detail: detailRLS, Status: http.StatusForbidden}
	case StorageUnique:
		env = Envelope{Code: CodeDatabaseUnique, Error: labelUnique, Detail: detailUnique, Status: http.StatusConflict}
	case StorageForeignKey:
		env = Envelope{Code: CodeDatabaseFK, Error: labelFK, Detail: detailFK, Status: http.StatusBadRequest}
	case StorageIntegrity:
		env = Envelope{Code: CodeDatabase, Error: labelIntegrity, Detail: detailIntegr, Status: http.StatusBadRequest}
	default:
		env = Envelope{Code: CodeDatabase, Error: labelDatabase, Detail: detailDatabase, Status: http.StatusInternalServerError}
	}
	return Translation{Envelope: env, Level: zerolog.ErrorLevel, Cause: class.String() + ": " + err.Error()}
}

func fallback(cause string) Translation {
	return Translation{
		Envelope: Envelope{Code: CodeGeneric, Error: labelGeneric, Detail: detailGeneric, Status: http.StatusInternalServerError},
		Level:    zerolog.ErrorLevel,
		Cause:    cause,
	}
}

// Generic returns the envelope used for unclassified failures.
func Generic() Envelope { return fallback("").Envelope }
