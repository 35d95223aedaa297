package validation

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Validation rules shared by the schema model and the session manager.
var (
	// EmailPattern matches a practical subset of RFC 5322 addresses.
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PasswordMinLength mirrors the remote auth service's policy so the
	// check can run locally before any remote call.
	PasswordMinLength = 6

	NameMaxLength = 200
	CodeMaxLength = 20
)

var emailRegex = regexp.MustCompile(EmailPattern)

// ValidEmail reports whether s is a well-formed email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// ValidPassword reports whether s meets the minimum password policy.
func ValidPassword(s string) bool {
	return len(s) >= PasswordMinLength
}

// NonEmpty reports whether s contains anything besides whitespace.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidID reports whether s parses as an opaque surrogate key. IDs are
// never interpreted beyond this syntactic check.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// NonNegative reports whether n is nil or a non-negative value.
// Nullable numeric columns skip the check when unset.
func NonNegative(n *int) bool {
	return n == nil || *n >= 0
}

// ValidYear reports whether n is nil or a plausible calendar year.
func ValidYear(n *int) bool {
	return n == nil || (*n >= 1900 && *n <= 2100)
}
