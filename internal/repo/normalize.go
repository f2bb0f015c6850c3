package repo

import "strings"

// optional maps a form value to its stored representation. Empty and
// whitespace-only strings become absent (NULL), so "not provided" and
// "explicitly blanked" are indistinguishable at storage level.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// text maps a stored optional back to the blank-string form the UI
// payloads use.
func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
