// Package version records build metadata for the funcstructs binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags; Init fills gaps from embedded VCS info.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Init backfills Commit and Date from the binary's embedded build info when
// they were not provided at link time.
func Init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "none" {
				Commit = s.Value
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = s.Value
			}
		}
	}
}

// String returns a one-line human-readable version description.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
