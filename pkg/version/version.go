package version

import (
	"fmt"
	"runtime"

	"github.com/sara-star-quant/hashgate/internal/constants"
)

// Semantic version components.
const (
	// Major is the major version (breaking changes).
	Major = 0
	// Minor is the minor version (new features).
	Minor = 3
	// Patch is the patch version (bug fixes).
	Patch = 1
	// Label is the optional pre-release label.
	Label = ""
)

// String returns the full version string.
func String() string {
	v := fmt.Sprintf("v%d.%d.%d", Major, Minor, Patch)
	if Label != "" {
		v += "-" + Label
	}
	return v
}

// Full returns a descriptive version string.
func Full() string {
	return fmt.Sprintf("%s %s (%s %s/%s)", constants.ProductName, String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
