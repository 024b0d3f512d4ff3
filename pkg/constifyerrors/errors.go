// Package constifyerrors provides the errors returned by generated constify
// code. It is the only package generated code depends on at runtime.
package constifyerrors

import "errors"

// ErrNoMatch indicates that a runtime value matched none of its declared
// candidate constants. Use [errors.Is] to detect a mismatch regardless of
// which declaration failed:
//
//	if errors.Is(err, constifyerrors.ErrNoMatch) { ... }
var ErrNoMatch = errors.New("constify: no candidate matched")

// NoMatchError is returned by fallible expansions when a runtime value
// matches none of its declaration's candidates. Name is the name of the
// failed declaration. Dispatch is nested and returns on the first failure,
// so Name always refers to the earliest-declared mismatch.
type NoMatchError struct {
	Name string
}

// Error implements the error interface with a fixed message format:
//
//	unexpected value for `Name`
func (e *NoMatchError) Error() string {
	return "unexpected value for `" + e.Name + "`"
}

// Is matches [ErrNoMatch] so that errors.Is works without knowing the
// declaration name.
func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}
