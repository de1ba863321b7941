package version

import (
	"fmt"
	"runtime"
)

// These variables are set via ldflags during build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
	BuiltBy = "unknown"
)

// Info returns the full multi-line version banner printed by `bincc
// version`.
func Info() string {
	return fmt.Sprintf(
		"bincc %s\nCommit: %s\nBuilt: %s\nGo: %s\nOS/Arch: %s/%s",
		Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	)
}

// Short returns just the semantic version string, used as the cobra root
// command's --version output.
func Short() string {
	return Version
}
