package apperr

import (
	"fmt"
	"net/http"
)

// TransportError is a failure produced by the HTTP layer itself rather than by
// a service (unknown route, throttling, oversized body).
type TransportError struct {
	Code   Code
	Status int
	Label  string
	Detail string
}

func (e *TransportError) Error() string { return e.Detail }

func RouteNotFound(method, path string) *TransportError {
	return &TransportError{
		Code:   CodeRouteNotFound,
		Status: http.StatusNotFound,
		Label:  "Route not found",
		Detail: fmt.Sprintf("No route matches %s %s.", method, path),
	}
}

func MethodNotAllowed(method, path string) *TransportError {
	return &TransportError{
		Code:   CodeMethodNotAllowed,
		Status: http.StatusMethodNotAllowed,
		Label:  "Method not allowed",
		Detail: fmt.Sprintf("Method %s is not allowed on %s.", method, path),
	}
}

func RateLimited() *TransportError {
	return &TransportError{
		Code:   CodeRateLimited,
		Status: http.StatusTooManyRequests,
		Label:  "Too many requests",
		Detail: "Rate limit exceeded. Please retry later.",
	}
}

func InvalidIdempotencyKey(reason string) *TransportError {
	return &TransportError{
		Code:   CodeInvalidIdempotency,
		Status: http.StatusBadRequest,
		Label:  "Invalid Idempotency-Key",
		Detail: reason,
	}
}

func BodyTooLarge(limit int64) *TransportError {
	return &TransportError{
		Code:   CodeBodyTooLarge,
		Status: http.StatusRequestEntityTooLarge,
		Label:  "Request body too large",
		Detail: fmt.Sprintf("Request body exceeds the limit of %d bytes.", limit),
	}
}
