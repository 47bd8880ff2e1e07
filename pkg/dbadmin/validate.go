package dbadmin

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidIdentifier is returned when a database or table name fails
	// the whitelist rule.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrNotSelect is returned when Query is given a non-SELECT statement.
	ErrNotSelect = errors.New("only SELECT statements are allowed")
)

// ValidateIdentifier enforces the identifier whitelist: non-empty, first
// character a letter or underscore, remaining characters alphanumeric or
// underscore. Violations are errors, never silently corrected.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidIdentifier)
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("%w: %q must not start with a digit", ErrInvalidIdentifier, name)
			}
		default:
			return fmt.Errorf("%w: %q contains character %q", ErrInvalidIdentifier, name, r)
		}
	}
	return nil
}

// checkSelectOnly accepts a statement solely on its case-insensitive
// leading token being SELECT. No further content validation is done; the
// database enforces the rest.
func checkSelectOnly(sqlText string) error {
	fields := strings.Fields(sqlText)
	if len(fields) == 0 {
		return fmt.Errorf("%w: statement is empty", ErrNotSelect)
	}
	if !strings.EqualFold(fields[0], "SELECT") {
		return fmt.Errorf("%w: statement starts with %q", ErrNotSelect, fields[0])
	}
	return nil
}
