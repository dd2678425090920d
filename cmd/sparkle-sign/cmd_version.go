package main

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	version = "dev"
	commit  = "none"
)

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(stdout, "sparkle-sign version %s (%s)\n", displayVersion(version), commit)
	return nil
}

// displayVersion normalizes release versions to vMAJOR.MINOR.PATCH and leaves
// anything that is not semver (such as "dev") untouched.
func displayVersion(v string) string {
	prefixed := ensureVPrefix(v)
	if !semver.IsValid(prefixed) {
		return v
	}
	return semver.Canonical(prefixed) + semver.Build(prefixed)
}

// ensureVPrefix ensures the version string has a 'v' prefix for semver.
func ensureVPrefix(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
