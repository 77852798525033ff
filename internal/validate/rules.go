// Package validate implements the input validation orchestrators.
//
// Each entity declares an ordered rule table: (field, predicate,
// failure message) tuples evaluated in declaration order. The first
// failing rule aborts validation with an UnprocessableEntity error
// carrying that rule's message. Structural id-presence checks run
// before any field rule and fail as BadRequest instead.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"cityguide/internal/domain"
)

// rule is one (field, predicate, message) tuple.
type rule struct {
	field   string
	ok      func() bool
	message string
}

// run evaluates rules in declaration order, first failure wins.
func run(rules []rule) error {
	for _, r := range rules {
		if !r.ok() {
			return domain.NewError(domain.UnprocessableEntity, r.message)
		}
	}
	return nil
}

// RefInput is a reference to an already-stored entity, given by id.
type RefInput struct {
	ID int32
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

// trimPtr normalizes an optional string: absent or blank becomes "".
func trimPtr(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// Predicate constructors used by the rule tables.

// Length bounds count characters, not bytes, matching the VARCHAR
// column limits.
func minLength(value string, min int) func() bool {
	return func() bool { return utf8.RuneCountInString(value) >= min }
}

func maxLength(value string, max int) func() bool {
	return func() bool { return utf8.RuneCountInString(value) <= max }
}

func matches(value string, pattern *regexp.Regexp) func() bool {
	return func() bool { return pattern.MatchString(value) }
}

func atLeast(value, min int64) func() bool {
	return func() bool { return value >= min }
}

// optional skips the check entirely when the value is empty.
func optional(value string, check func() bool) func() bool {
	return func() bool { return value == "" || check() }
}
