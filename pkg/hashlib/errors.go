package hashlib

import qerrors "github.com/sara-star-quant/hashgate/internal/errors"

// Errors returned by hashlib. Match them with errors.Is.
var (
	ErrUnsupportedAlgorithm = qerrors.ErrUnsupportedAlgorithm
	ErrUsedForSecurity      = qerrors.ErrUsedForSecurity
	ErrInvalidOption        = qerrors.ErrInvalidOption
	ErrNotCloneable         = qerrors.ErrNotCloneable
	ErrRefusedByRuntime     = qerrors.ErrRefusedByRuntime
)

type (
	// PolicyError is returned by a gated constructor called with a
	// security-usage declaration of true (or none) in compliance mode.
	PolicyError = qerrors.PolicyError

	// ResolveError is returned when no provider serves an algorithm.
	ResolveError = qerrors.ResolveError

	// OptionError is returned for out-of-range constructor options.
	OptionError = qerrors.OptionError
)
