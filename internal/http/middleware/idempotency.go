package middleware

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/apperr"
)

// HeaderIdempotencyKey carries the client's idempotency key on unsafe requests.
const HeaderIdempotencyKey = "Idempotency-Key"

const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay"
	ctxKeyRateBypass = "rate.bypass"

	defaultIdemMaxLen = 200
)

var defaultIdemPattern = regexp.MustCompile(`^[A-Za-z0-9._~:\-]+$`)

// GetIdempotencyKey returns the key IdempotencyValidator accepted, if any.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	s := c.GetString(ctxKeyIdemKey)
	return s, s != ""
}

// IsReplay reports whether a completed request is stored under this
// request's scope and key.
func IsReplay(c *gin.Context) bool {
	return c.GetBool(ctxKeyIdemReplay)
}

// IdempotencyOptions configures IdempotencyValidator. Record expiry is the
// lookup's business.
type IdempotencyOptions struct {
	// Scope names the operation a request performs (e.g. "document.create").
	// Requests with an empty scope still have their key validated but are
	// never looked up.
	Scope func(*gin.Context) string
	// MaxLen defaults to 200.
	MaxLen int
	// Pattern defaults to letters, digits and . _ ~ : -
	Pattern *regexp.Regexp
}

// IdempotencyLookup reports whether an unexpired record exists for
// (scope, key) at now.
type IdempotencyLookup func(ctx context.Context, scope, key string, now time.Time) (bool, error)

// IdempotencyValidator checks the Idempotency-Key header. A missing header
// passes through; a malformed one fails with GEN-IDEM-VAL-A01. For scoped
// requests a stored record marks the request as a replay, which also lets it
// skip rate limiting. Serving the replay is left to the handler. Lookup
// errors are logged and count as a miss.
func IdempotencyValidator(opts IdempotencyOptions, lookup IdempotencyLookup) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = defaultIdemMaxLen
	}
	pat := opts.Pattern
	reason := fmt.Sprintf("%s must be 1 to %d letters, digits or . _ ~ : - characters.", HeaderIdempotencyKey, maxLen)
	if pat == nil {
		pat = defaultIdemPattern
	} else {
		reason = fmt.Sprintf("%s must be at most %d characters matching %s.", HeaderIdempotencyKey, maxLen, pat)
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			Fail(c, apperr.InvalidIdempotencyKey(reason))
			return
		}
		c.Set(ctxKeyIdemKey, key)

		var scope string
		if opts.Scope != nil {
			scope = opts.Scope(c)
		}
		if scope == "" || lookup == nil {
			c.Next()
			return
		}

		found, err := lookup(c.Request.Context(), scope, key, time.Now().UTC())
		switch {
		case err != nil:
			LoggerFrom(c).Warn().Err(err).Str("scope", scope).Msg("idempotency lookup failed")
		case found:
			c.Set(ctxKeyIdemReplay, true)
			c.Set(ctxKeyRateBypass, true)
			idemReplays.WithLabelValues(scope).Inc()
		}
		c.Next()
	}
}
