package middleware

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

// Idempotency support for the checkout endpoint. The middleware validates
// the Idempotency-Key header, stashes the key in the request context, and
// consults a lookup for a previously completed charge so that a retried
// checkout never charges twice. Serving the stored order stays with the
// payment handler; persistence hides behind the IdempotencyLookup type.

// HeaderIdempotencyKey is the request header carrying the client's retry
// deduplication key. Clients keep it stable across retries of one checkout.
const HeaderIdempotencyKey = "Idempotency-Key"

// Context keys stashing idempotency state, read through the accessors below.
const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay" // bool: a stored outcome exists
	ctxKeyRateBypass = "rate.bypass" // bool: skip rate limiting
)

// GetIdempotencyKey returns the validated key stashed by
// IdempotencyValidator and whether one is present. Handlers read this
// instead of the raw header.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyIdemKey)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// IsReplay reports whether the lookup found a completed charge for this key,
// meaning the handler should serve the stored order rather than process the
// payment again.
func IsReplay(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyIdemReplay)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IdempotencyOptions tunes header validation. MaxLen <= 0 defaults to 200;
// a nil Pattern falls back to an RFC 7230-style token of letters, digits,
// and ._~-: characters. Key TTLs are the lookup's concern, not validated
// here.
type IdempotencyOptions struct {
	MaxLen  int
	Pattern *regexp.Regexp
}

// IdempotencyLookup answers whether a still-valid completed charge exists
// for (userID, key) at now. Errors mean the lookup itself failed and must
// not block normal processing.
type IdempotencyLookup func(ctx context.Context, userID, key string, now time.Time) (exists bool, err error)

// IdempotencyValidator rejects malformed Idempotency-Key headers with a 400,
// stashes valid keys, and flags detected replays so the rate limiter serves
// them for free. Requests without the header pass through untouched.
func IdempotencyValidator(opts IdempotencyOptions, lookup IdempotencyLookup) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    "bad_idempotency_key",
				"message": "invalid Idempotency-Key",
			})
			return
		}

		c.Set(ctxKeyIdemKey, key)

		if lookup != nil {
			uid := userIDFromCtx(c)
			if exists, _ := lookup(c.Request.Context(), uid, key, time.Now().UTC()); exists {
				c.Set(ctxKeyIdemReplay, true)
				c.Set(ctxKeyRateBypass, true)
			}
		}

		c.Next()
	}
}

// userIDFromCtx reads the identity set by BearerAuth. Anonymous checkouts
// fall back to the guest account, matching how their orders are recorded.
func userIDFromCtx(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return "guest"
}
