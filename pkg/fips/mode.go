// Package fips reports the compliance mode of the Go cryptographic module.
//
// A Mode is resolved once per process (or per hashlib.Registry) and never
// re-evaluated. Mode values outside the known set are treated as inactive.
package fips

import "strings"

// Mode is the compliance state of a cryptographic provider.
type Mode int

const (
	// ModeUnknown means the mode has not been or could not be determined.
	ModeUnknown Mode = iota
	// ModeInactive means the provider places no restriction on algorithms.
	ModeInactive
	// ModeActive means only approved algorithms may be used for security.
	ModeActive
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeUnknown:
		return "unknown"
	case ModeInactive:
		return "inactive"
	case ModeActive:
		return "active"
	default:
		return "invalid"
	}
}

// Active reports whether m restricts non-audited digests.
func (m Mode) Active() bool {
	return m == ModeActive
}

// ParseMode parses a mode string as found in configuration or GODEBUG.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "only", "active", "enabled", "1", "true":
		return ModeActive
	case "off", "inactive", "disabled", "0", "false":
		return ModeInactive
	default:
		return ModeUnknown
	}
}

// Normalize collapses everything other than ModeActive to ModeInactive.
// Unknown and out-of-range values are not restrictive.
func Normalize(m Mode) Mode {
	if m == ModeActive {
		return ModeActive
	}
	return ModeInactive
}

// FromBool maps a boolean provider answer onto a Mode.
func FromBool(enabled bool) Mode {
	if enabled {
		return ModeActive
	}
	return ModeInactive
}
