package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full identity for the startup log line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Short(), Commit, Date)
}
