package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ProblemKind classifies a single request validation problem.
type ProblemKind uint8

const (
	ProblemOther ProblemKind = iota
	ProblemMissing
	ProblemTypeMismatch
	ProblemValue
)

// FieldProblem is one rejected field of a request.
type FieldProblem struct {
	Field   string
	Message string
	Kind    ProblemKind
}

func (p FieldProblem) String() string {
	switch p.Kind {
	case ProblemMissing:
		return p.Field + ": This field is required"
	case ProblemTypeMismatch:
		return p.Field + ": Invalid type - " + p.Message
	default:
		return p.Field + ": " + p.Message
	}
}

// ValidationError aggregates every problem found in one request, in the order
// they were reported.
type ValidationError struct {
	Problems []FieldProblem
}

// Error renders all problems joined by "; ".
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

// Invalid builds a single-problem validation error, e.g. for a malformed path
// parameter.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Problems: []FieldProblem{{Field: field, Message: message, Kind: ProblemValue}}}
}

// Missing builds a single-problem validation error for an absent field.
func Missing(field string) *ValidationError {
	return &ValidationError{Problems: []FieldProblem{{Field: field, Kind: ProblemMissing}}}
}

// FromBinding converts request binding failures into a *ValidationError. err
// may join several failures (errors.Join), e.g. a JSON type error followed by
// struct validation of the partially decoded value; a field is reported once,
// with the first problem seen for it. It returns nil when err carries nothing
// request-shaped.
func FromBinding(err error) *ValidationError {
	if err == nil {
		return nil
	}
	out := &ValidationError{}
	seen := map[string]bool{}
	add := func(p FieldProblem) {
		if seen[p.Field] {
			return
		}
		seen[p.Field] = true
		out.Problems = append(out.Problems, p)
	}
	collect(err, add)
	if len(out.Problems) == 0 {
		return nil
	}
	return out
}

func collect(err error, add func(FieldProblem)) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collect(e, add)
		}
		return
	}

	var (
		existing *ValidationError
		verrs    validator.ValidationErrors
		typeErr  *json.UnmarshalTypeError
		synErr   *json.SyntaxError
	)
	switch {
	case errors.As(err, &existing):
		for _, p := range existing.Problems {
			add(p)
		}
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			add(fieldProblem(fe))
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		add(FieldProblem{Field: field, Message: "expected " + jsonType(typeErr.Type), Kind: ProblemTypeMismatch})
	case errors.As(err, &synErr):
		add(FieldProblem{Field: "body", Message: fmt.Sprintf("Invalid JSON at offset %d", synErr.Offset), Kind: ProblemOther})
	case errors.Is(err, io.EOF):
		add(FieldProblem{Field: "body", Kind: ProblemMissing})
	case errors.Is(err, io.ErrUnexpectedEOF):
		add(FieldProblem{Field: "body", Message: "Invalid JSON: unexpected end of input", Kind: ProblemOther})
	}
}

func fieldProblem(fe validator.FieldError) FieldProblem {
	field := fe.Namespace()
	// drop the top-level struct name
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	if field == "" {
		field = fe.Field()
	}
	if fe.Tag() == "required" {
		return FieldProblem{Field: field, Kind: ProblemMissing}
	}
	return FieldProblem{Field: field, Message: tagMessage(fe), Kind: ProblemValue}
}

func tagMessage(fe validator.FieldError) string {
	unit := ""
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = " items"
	}
	switch fe.Tag() {
	case "notblank":
		return "This field cannot be blank"
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "url", "http_url":
		return "Must be a valid URL"
	case "email":
		return "Must be a valid email address"
	case "max":
		return "Must be at most " + fe.Param() + unit
	case "min":
		return "Must be at least " + fe.Param() + unit
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "gte":
		return "Must be greater than or equal to " + fe.Param()
	case "lte":
		return "Must be less than or equal to " + fe.Param()
	default:
		return fmt.Sprintf("Failed the '%s' rule", fe.Tag())
	}
}

func jsonType(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
