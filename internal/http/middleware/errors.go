// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file holds the single failure boundary of the service. Handlers,
// router fallbacks and the middleware in this package all abort through Fail,
// so every error response carries the same {code, error, detail, status}
// envelope and every failure is logged and counted exactly once.
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tbourn/go-career-backend/internal/apperr"
	"github.com/tbourn/go-career-backend/internal/observability"
)

// Fail translates err with apperr.Translate and aborts the request with the
// resulting envelope.
//
// The translation is logged on the request-scoped logger at the level chosen
// by the translator (warn for domain and validation failures, error for
// storage and unclassified ones). The internal cause is logged but never
// written to the client. api_errors_total is incremented by code and status,
// and the active trace span is annotated with the code.
func Fail(c *gin.Context, err error) { abortWith(c, err, "api error", nil) }

// abortWith is Fail with its own log message and extra log fields. When the
// response is already on the wire the failure is still logged and counted,
// but nothing more is written.
func abortWith(c *gin.Context, err error, msg string, fields func(*zerolog.Event)) {
	tr := apperr.Translate(err)
	env := tr.Envelope
	rid := RequestIDFrom(c)

	ev := LoggerFrom(c).WithLevel(tr.Level).
		Str("code", string(env.Code)).
		Int("status", env.Status).
		Str("cause", tr.Cause).
		Str("request_id", rid)
	if fields != nil {
		fields(ev)
	}
	ev.Msg(msg)

	c.Set(ctxKeyErrorCode, string(env.Code))
	apiErrors.WithLabelValues(string(env.Code), strconv.Itoa(env.Status)).Inc()
	if c.Request != nil {
		observability.MarkFailure(c.Request.Context(), string(env.Code), env.Status, tr.Level.String(), tr.Cause)
	}

	if c.Writer.Written() {
		c.Abort()
		return
	}
	if rid != "" {
		c.Header(requestIDHeader, rid)
	}
	c.AbortWithStatusJSON(env.Status, env)
}

// RequestIDFrom returns the correlation id of the request, or "" when
// RequestID() did not run.
func RequestIDFrom(c *gin.Context) string {
	if v, ok := c.Get(requestIDKey); ok {
		if s := asString(v); s != "" {
			return s
		}
	}
	return c.Writer.Header().Get(requestIDHeader)
}
