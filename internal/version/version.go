package version

import "fmt"

var (
	// Version is the semantic version of the gsperm binary.
	Version = "0.1.0"

	// GitCommit is set at build time with -ldflags.
	GitCommit string
)

// String returns the full version string, e.g. "gsperm v0.1.0 (abc1234)".
func String() string {
	if GitCommit == "" {
		return fmt.Sprintf("gsperm v%s", Version)
	}
	return fmt.Sprintf("gsperm v%s (%s)", Version, GitCommit)
}
