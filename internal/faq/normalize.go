// Package faq implements the FAQ matching and escalation primitives used by
// the chatbot: text normalization, keyword sentiment detection, and fuzzy
// matching of user messages against the FAQ knowledge base.
//
// The package is deliberately small and dependency-free:
//
//   - No logging (callers decide how/what to log)
//   - Pure functions over immutable inputs; safe for concurrent use
//   - Deterministic scoring: identical inputs always produce identical output
//
// Matching uses the Ratcliff/Obershelp similarity ratio over normalized
// strings plus a small token-overlap bonus; see match.go for details.
package faq

import "strings"

// Normalize lowercases s, replaces every character outside [a-z0-9] and
// whitespace with a space, collapses whitespace runs to a single space, and
// trims the result. It is total over all inputs: empty in, empty out.
//
// The function is ASCII-oriented by design; FAQ questions and chat input are
// compared on this reduced alphabet so punctuation and casing never affect
// match scores.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := true // swallow leading spaces
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevSpace = false
		default:
			// Everything else, whitespace included, becomes a separator.
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
		}
	}
	return strings.TrimRight(b.String(), " ")
}
