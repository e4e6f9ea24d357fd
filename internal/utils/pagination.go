// Package utils carries tiny helpers with no domain knowledge.
package utils

import "strconv"

// AtoiDefault parses s as a base-10 int, returning def when s is empty or
// not a valid integer. Handy for query parameters where a bad value should
// degrade to the default rather than fail the request.
func AtoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
