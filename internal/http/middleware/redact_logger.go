package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Shoppers put emails and phone numbers in chat questions, newsletter
// signups, and account payloads, so query strings and headers are scrubbed
// before they reach a log line. Bodies are never logged.
//
// UUIDs are replaced before phone numbers; the phone pattern is loose enough
// to latch onto the digit runs inside a UUID otherwise.
var (
	uuidPattern  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailPattern = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	// A leading "+" is not at a word boundary, so the pattern anchors on
	// either the plus or \b.
	phonePattern = regexp.MustCompile(`(?:\+|\b)(?:\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// redactPII substitutes recognizable identifiers in s with typed markers.
func redactPII(s string) string {
	if s == "" {
		return s
	}
	s = uuidPattern.ReplaceAllString(s, "[REDACTED:id]")
	s = emailPattern.ReplaceAllString(s, "[REDACTED:email]")
	s = phonePattern.ReplaceAllString(s, "[REDACTED:phone]")
	return s
}

// RedactOptions configures extra scrubbing for RedactingLogger. MaskHeaders
// names headers whose values are replaced wholesale with "[REDACTED]";
// matching is case-insensitive and merged with the built-in set
// (Authorization, Cookie, Set-Cookie).
type RedactOptions struct {
	MaskHeaders []string
}

// RedactingLogger logs one structured line per request with PII scrubbed
// from the query string and header values. Level tracks the response status
// (info, warn for 4xx, error for 5xx). The correlation ID is taken from the
// response X-Request-ID when RequestID ran upstream, falling back to the
// request header.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	masked := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			masked[h] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		safeQuery := redactPII(c.Request.URL.RawQuery)

		safeHeaders := make(map[string]string, len(c.Request.Header))
		for name, vals := range c.Request.Header {
			if _, hide := masked[strings.ToLower(name)]; hide {
				safeHeaders[name] = "[REDACTED]"
				continue
			}
			safeHeaders[name] = redactPII(strings.Join(vals, ", "))
		}

		c.Next()

		status := c.Writer.Status()
		rid := c.Writer.Header().Get(requestIDHeader)
		if rid == "" {
			rid = c.GetHeader(requestIDHeader)
		}

		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}
		ev.
			Str("request_id", rid).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", safeQuery).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}
