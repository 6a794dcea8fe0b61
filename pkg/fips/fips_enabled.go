//go:build fips
// +build fips

package fips

// This file is compiled when the "fips" build tag is specified.
// Such binaries always treat the audited provider as being in FIPS mode,
// whatever GODEBUG says.

// ForcedByBuild reports whether the binary was built in FIPS mode.
func ForcedByBuild() bool { return true }
