package models

import (
	"fmt"
	"regexp"
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[A-Za-z]{2,}$`)
	tagRegex   = regexp.MustCompile(`^#\S+$`)
)

// ValidationError rejects an entity field at construction or assignment
// time. It is never silently coerced away.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool { return emailRegex.MatchString(s) }

// ValidTag reports whether s is a #-prefixed tag with no whitespace.
func ValidTag(s string) bool { return tagRegex.MatchString(s) }
