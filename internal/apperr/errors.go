// Package apperr defines the failure model shared by every layer of the API:
// typed domain errors raised by services, the stable error code registry,
// classification of storage failures, aggregation of request validation
// problems, and the translation of any failure into the JSON envelope that
// clients receive.
//
// Services and repositories only ever return errors. Deciding the HTTP status,
// the client-facing code and the message happens in exactly one place
// (Translate), called from the HTTP failure boundary.
package apperr

import (
	"net/http"
	"strings"
)

// Kind is the category of a domain error. It determines the HTTP status.
type Kind uint8

const (
	KindNotFound Kind = iota + 1
	KindAlreadyExists
	KindInvalidInput
)

// Status returns the canonical HTTP status for the kind.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists:
		return http.StatusConflict
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Variant identifies one (entity, failure kind) pair. The set is closed: every
// variant has exactly one registry entry (see registry.go).
type Variant uint8

const (
	VariantUserNotFound Variant = iota
	VariantProfileNotFound
	VariantProfileAlreadyExists
	VariantLocationNotFound
	VariantWorkExperienceNotFound
	VariantGitHubUsernameNotFound
	VariantGitHubUsernameAlreadyExists
	VariantLeetcodeNotFound
	VariantLeetcodeBadgeNotFound
	VariantLeetcodeTagNotFound
	VariantCertificationNotFound
	VariantCertificationAlreadyExists
	VariantLinksNotFound
	VariantLinksAlreadyExists
	VariantVolunteeringNotFound
	VariantProjectNotFound
	VariantEducationNotFound
	VariantPublicationNotFound
	VariantDocumentNotFound
	VariantOrganizationNotFound
	VariantFellowshipNotFound
	VariantJobNotFound
	VariantProjectOpportunityNotFound
	VariantInvalidTools

	variantCount
)

// Error is a typed domain failure. It carries only what is needed to render a
// human-readable detail without going back to the database.
type Error struct {
	Variant Variant
	// Key names the identifier in the detail ("ID" unless a constructor says otherwise).
	Key string
	// Value is the identifying value (an id, a username, a list of rejected values).
	Value string
}

// Error returns the rendered detail, which is safe to show to clients.
func (e *Error) Error() string { return lookup(e.Variant).render(e) }

// Is reports whether target is a domain error of the same variant, so callers
// can write errors.Is(err, apperr.DocumentNotFound("")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Variant == e.Variant
}

// Kind returns the category of the error.
func (e *Error) Kind() Kind { return lookup(e.Variant).kind }

// Code returns the registry code of the error.
func (e *Error) Code() Code { return lookup(e.Variant).code }

func newError(v Variant, value string) *Error {
	return &Error{Variant: v, Key: "ID", Value: value}
}

func UserNotFound(id string) *Error    { return newError(VariantUserNotFound, id) }
func ProfileNotFound(id string) *Error { return newError(VariantProfileNotFound, id) }

// ProfileNotFoundBy is ProfileNotFound for a lookup by something other than
// the profile id, e.g. ProfileNotFoundBy("user ID", uid).
func ProfileNotFoundBy(key, value string) *Error {
	return &Error{Variant: VariantProfileNotFound, Key: key, Value: value}
}

func ProfileAlreadyExists(userID string) *Error {
	return newError(VariantProfileAlreadyExists, userID)
}
func LocationNotFound(id string) *Error { return newError(VariantLocationNotFound, id) }
func WorkExperienceNotFound(id string) *Error {
	return newError(VariantWorkExperienceNotFound, id)
}
func GitHubUsernameNotFound(username string) *Error {
	return &Error{Variant: VariantGitHubUsernameNotFound, Key: "GitHub username", Value: username}
}
func GitHubUsernameAlreadyExists(username string) *Error {
	return &Error{Variant: VariantGitHubUsernameAlreadyExists, Key: "GitHub username", Value: username}
}
func LeetcodeNotFound(id string) *Error      { return newError(VariantLeetcodeNotFound, id) }
func LeetcodeBadgeNotFound(id string) *Error { return newError(VariantLeetcodeBadgeNotFound, id) }
func LeetcodeTagNotFound(id string) *Error   { return newError(VariantLeetcodeTagNotFound, id) }

// CertificationNotFound accepts an empty id, meaning no certifications exist at all.
func CertificationNotFound(id string) *Error { return newError(VariantCertificationNotFound, id) }
func CertificationAlreadyExists(id string) *Error {
	return newError(VariantCertificationAlreadyExists, id)
}

// LinksNotFound takes any identifier the links were looked up by.
func LinksNotFound(identifier string) *Error {
	return &Error{Variant: VariantLinksNotFound, Key: "identifier", Value: identifier}
}
func LinksAlreadyExists(userID string) *Error { return newError(VariantLinksAlreadyExists, userID) }
func VolunteeringNotFound(id string) *Error   { return newError(VariantVolunteeringNotFound, id) }
func ProjectNotFound(id string) *Error        { return newError(VariantProjectNotFound, id) }
func EducationNotFound(id string) *Error      { return newError(VariantEducationNotFound, id) }
func PublicationNotFound(id string) *Error    { return newError(VariantPublicationNotFound, id) }
func DocumentNotFound(id string) *Error       { return newError(VariantDocumentNotFound, id) }
func OrganizationNotFound(id string) *Error   { return newError(VariantOrganizationNotFound, id) }
func FellowshipNotFound(id string) *Error     { return newError(VariantFellowshipNotFound, id) }
func JobNotFound(id string) *Error            { return newError(VariantJobNotFound, id) }
func ProjectOpportunityNotFound(id string) *Error {
	return newError(VariantProjectOpportunityNotFound, id)
}

// InvalidTools reports values of field that are not in the tools catalogue.
func InvalidTools(field string, invalid []string) *Error {
	return &Error{Variant: VariantInvalidTools, Key: field, Value: strings.Join(invalid, ", ")}
}
