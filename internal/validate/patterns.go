package validate

import (
	"regexp"
	"strings"
)

var (
	// Decimal degrees with a mandatory fractional part, -90..90.
	latitudePattern = regexp.MustCompile(`^-?([0-8]?[0-9]|90)(\.[0-9]{1,})$`)

	// Decimal degrees with a mandatory fractional part, -180..180.
	longitudePattern = regexp.MustCompile(`^-?([0-9]{1,2}|1[0-7][0-9]|180)(\.[0-9]{1,})$`)

	// #RGB or #RRGGBB.
	colorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

	urlPattern = regexp.MustCompile(`^(https?://)?[\w.-]+\.[a-zA-Z]{2,6}(/\S*)?$`)

	// Allowed password alphabet, minimum eight characters. The
	// composition requirements are checked in validPassword because
	// RE2 has no lookahead.
	passwordCharsPattern = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&\-_]{8,}$`)
)

const passwordSpecials = "@$!%*?&"

// validPassword enforces the password complexity contract: at least
// eight characters from the allowed alphabet, with at least one lower,
// one upper, one digit and one special character.
func validPassword(password string) bool {
	if !passwordCharsPattern.MatchString(password) {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, c):
			hasSpecial = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSpecial
}
