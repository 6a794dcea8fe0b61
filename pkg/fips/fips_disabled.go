//go:build !fips
// +build !fips

package fips

// This file is compiled when the "fips" build tag is NOT specified.
// The runtime GODEBUG setting alone decides the mode.

// ForcedByBuild reports whether the binary was built in FIPS mode.
func ForcedByBuild() bool { return false }
