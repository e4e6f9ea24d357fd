// Package sysutil holds small process-level helpers shared by the entry
// point: log level wiring and environment fallbacks.
package sysutil

import (
	"strings"

	"github.com/rs/zerolog"
)

var logLevels = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
	"panic":   zerolog.PanicLevel,
}

// SetLogLevel sets the global zerolog level from a case-insensitive name.
// Empty or unrecognized names fall back to info so a typo in LOG_LEVEL never
// silences the process.
func SetLogLevel(lvl string) {
	name := strings.ToLower(strings.TrimSpace(lvl))
	if level, ok := logLevels[name]; ok {
		zerolog.SetGlobalLevel(level)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// FirstNonEmpty returns the first value that is not blank after trimming,
// preserving its original spacing. Returns "" when every value is blank.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
