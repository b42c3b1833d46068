package version

// Version is the CLI version, overridden at build time via
// -ldflags "-X github.com/abcu/course-planner/internal/version.Version=v1.2.3"
var Version = "dev"

// String returns the current CLI version
func String() string {
	return Version
}
