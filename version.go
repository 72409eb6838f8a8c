package droid

import (
	"runtime/debug"

	"golang.org/x/mod/semver"
)

var (
	// VersionCore is set at build time with -ldflags.
	VersionCore = "0.0.0"
	// Prerelease is set at build time with -ldflags.
	Prerelease = ""
)

// SemVer returns the version of droid, falling back to the module
// version from the build info when the linked-in version is invalid.
func SemVer() string {
	v := "v" + VersionCore
	if Prerelease != "" {
		v += "-" + Prerelease
	}

	if semver.IsValid(v) {
		return v
	}

	if info, ok := debug.ReadBuildInfo(); ok && semver.IsValid(info.Main.Version) {
		return info.Main.Version
	}

	return "v0.0.0-unknown"
}
