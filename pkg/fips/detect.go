package fips

import (
	"crypto/fips140"
	"os"
	"strings"
	"sync"
)

// Enabled reports whether the Go cryptography module is operating in
// FIPS 140-3 mode, either through GODEBUG=fips140=on|only at startup or
// because the binary was built with the "fips" tag.
//
// This can't change after the program has started.
func Enabled() bool {
	return fips140.Enabled() || ForcedByBuild()
}

// Strict reports whether non-approved algorithms additionally error or panic
// inside the Go module (GODEBUG=fips140=only).
var Strict = sync.OnceValue(func() bool {
	if !fips140.Enabled() {
		return false
	}
	return strictFromGODEBUG(os.Getenv("GODEBUG"))
})

// strictFromGODEBUG scans settings backwards since the last value wins.
func strictFromGODEBUG(godebug string) bool {
	settings := strings.Split(godebug, ",")
	for i := len(settings) - 1; i >= 0; i-- {
		k, v, ok := strings.Cut(strings.TrimSpace(settings[i]), "=")
		if !ok || k != "fips140" {
			continue
		}
		return v == "only"
	}
	return false
}
