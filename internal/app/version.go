package app

import "fmt"

// Set with -ldflags "-X github.com/heartmarshall/coursetrack-backend/internal/app.Version=..." at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the long form printed at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}
