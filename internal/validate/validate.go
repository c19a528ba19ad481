package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces the minimum length only; the storefront never demanded
// character classes.
func Password(s string) bool {
	return len(s) >= 6 && len(s) <= 72
}

// ID validates a simple resource identifier (uuid-shaped or seed ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable person or product name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Text trims and bounds free-form text such as descriptions, comments and
// special requests. Empty input is allowed; callers enforce required-ness.
func Text(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) <= max
}

func Rating(n int) bool { return n >= 1 && n <= 5 }

func Discount(d float64) bool { return d >= 0 && d <= 100 }

// OneOf reports whether s is one of the allowed enum values.
func OneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
