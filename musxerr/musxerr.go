// Package musxerr defines the distinct error kinds the loader and its
// queries can raise, per spec §7. Each kind is a sentinel wrapped with
// errors.New so callers can test for it with errors.Is, and each
// constructor returns a wrapped error carrying the offending detail so
// %w chains read like "loading others: measure 12: clef and clef list
// both set".
package musxerr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Compare with errors.Is, e.g.
// errors.Is(err, musxerr.ErrIntegrity).
var (
	ErrLoad       = errors.New("load error")
	ErrParse      = errors.New("parse error")
	ErrUnknownXml = errors.New("unknown xml")
	ErrIntegrity  = errors.New("integrity error")
	ErrLogic      = errors.New("logic error")
	ErrOutOfRange = errors.New("out of range")
)

// Load wraps a top-level load failure: malformed XML, wrong root tag, or
// a required section that failed to populate.
func Load(node string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoad, node, cause)
	}
	return fmt.Errorf("%w: %s", ErrLoad, node)
}

// Parse wraps a failed typed attribute/text conversion.
func Parse(field, value string, cause error) error {
	return fmt.Errorf("%w: field %q value %q: %w", ErrParse, field, value, cause)
}

// UnknownXml reports an unrecognized child tag or enum token. Callers in
// non-strict mode log this instead of returning it.
func UnknownXml(kind, token string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownXml, kind, token)
}

// Integrity wraps a record invariant violated after population.
func Integrity(what string) error {
	return fmt.Errorf("%w: %s", ErrIntegrity, what)
}

// Logic wraps a query precondition failure.
func Logic(what string) error {
	return fmt.Errorf("%w: %s", ErrLogic, what)
}

// OutOfRange wraps a numeric conversion that exceeded a valid range.
func OutOfRange(what string) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, what)
}
