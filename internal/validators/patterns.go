package validators

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length limits mirror the column sizes of the original schema.
const (
	maxNameLength     = 256
	maxEmailLength    = 128
	maxTitleLength    = 150
	maxLanguageLength = 50
	maxCommentLength  = 4096

	minPasswordLength = 8
)

// namePattern accepts letters of any script (accents included), spaces,
// apostrophes and hyphens. Digits and other punctuation are rejected.
var namePattern = regexp.MustCompile(`^[\p{L} '-]+$`)

// IsValidName reports whether s is a non-blank name matching the name pattern.
func IsValidName(s string) bool {
	if strings.TrimSpace(s) == "" || utf8.RuneCountInString(s) > maxNameLength {
		return false
	}
	return namePattern.MatchString(s)
}

// IsValidPassword reports whether s satisfies the password policy:
// at least 8 characters with a digit, an uppercase and a lowercase letter.
func IsValidPassword(s string) bool {
	if utf8.RuneCountInString(s) < minPasswordLength {
		return false
	}

	var hasDigit, hasUpper, hasLower bool
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}

	return hasDigit && hasUpper && hasLower
}

// IsValidEmail does a loose check: one '@' with something on
// both sides and a dot in the domain part.
func IsValidEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength || strings.ContainsAny(s, " \t\r\n") {
		return false
	}

	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
