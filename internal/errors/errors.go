// Package errors defines sentinel errors and typed wrappers for hashgate.
// Error messages name the algorithm involved but never include input data.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for digest resolution and construction
var (
	// ErrUnsupportedAlgorithm indicates no provider can serve an algorithm
	ErrUnsupportedAlgorithm = errors.New("hashgate: unsupported hash algorithm")

	// ErrUsedForSecurity indicates a non-audited digest was requested for a
	// security purpose while compliance mode is active
	ErrUsedForSecurity = errors.New("hashgate: usedforsecurity=true is not allowed in FIPS mode")

	// ErrInvalidOption indicates a constructor option is out of range
	ErrInvalidOption = errors.New("hashgate: invalid digest option")

	// ErrProviderUnavailable indicates the audited provider cannot report its mode
	ErrProviderUnavailable = errors.New("hashgate: audited provider unavailable")

	// ErrNotCloneable indicates a digest's state cannot be copied
	ErrNotCloneable = errors.New("hashgate: digest state cannot be copied")

	// ErrRefusedByRuntime indicates the Go FIPS module refuses an algorithm
	// under GODEBUG=fips140=only
	ErrRefusedByRuntime = errors.New("hashgate: algorithm refused in FIPS 140-only mode")
)

// PolicyError reports a compliance policy violation for one algorithm.
type PolicyError struct {
	Algorithm string // Algorithm the caller asked for
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Algorithm, ErrUsedForSecurity)
}

// Unwrap returns ErrUsedForSecurity so errors.Is matches the sentinel.
func (e *PolicyError) Unwrap() error {
	return ErrUsedForSecurity
}

// NewPolicyError creates a new PolicyError
func NewPolicyError(algorithm string) *PolicyError {
	return &PolicyError{Algorithm: algorithm}
}

// ResolveError wraps a failure to resolve or build a digest constructor
type ResolveError struct {
	Algorithm string // Algorithm being resolved
	Err       error  // Underlying error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Algorithm, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// NewResolveError creates a new ResolveError
func NewResolveError(algorithm string, err error) *ResolveError {
	return &ResolveError{Algorithm: algorithm, Err: err}
}

// OptionError wraps ErrInvalidOption with the offending option name
type OptionError struct {
	Option string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidOption, e.Option, e.Reason)
}

func (e *OptionError) Unwrap() error {
	return ErrInvalidOption
}

// NewOptionError creates a new OptionError
func NewOptionError(option, reason string) *OptionError {
	return &OptionError{Option: option, Reason: reason}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
