package cli

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeText applies NFKC so that visually identical input is stored identically.
// Surrounding whitespace is kept; the store treats payloads as opaque.
func normalizeText(s string) string {
	return norm.NFKC.String(s)
}

// parseID parses a record identifier given on the command line
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", arg)
	}
	if id < 1 {
		return 0, fmt.Errorf("invalid id %d: must be positive", id)
	}
	return id, nil
}
