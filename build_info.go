package oas2

import (
	"fmt"
	"runtime"
)

var (
	// version, commit, and buildTime are set via ldflags during release
	// builds. Development builds (go build, go run, go test) leave them at
	// their default values below.
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version, or "dev" for a development build.
func Version() string { return version }

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string { return commit }

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string { return buildTime }

// GoVersion returns the Go toolchain version used to build the binary.
func GoVersion() string { return runtime.Version() }

// BuildInfo returns a human-readable summary of all build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s, Commit: %s, Build Time: %s, Go Version: %s",
		version, commit, buildTime, GoVersion())
}
