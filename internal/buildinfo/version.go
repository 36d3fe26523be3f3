package buildinfo

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// AppVersion is overridden at build time with -ldflags "-X ...AppVersion=v1.2.3".
var AppVersion = "v0.1.0-dev"

// Version parses AppVersion, falling back to 0.0.0 when it is not semver.
func Version() *version.Version {
	v, err := version.NewVersion(AppVersion)
	if err != nil {
		return version.Must(version.NewVersion("0.0.0"))
	}
	return v
}

// Satisfies reports whether the running version meets constraint,
// e.g. ">= 0.1, < 1.0".
func Satisfies(constraint string) (bool, error) {
	c, err := version.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	return c.Check(Version().Core()), nil
}
