package version

// Set at build time with -ldflags "-X github.com/cfoust/gmk/pkg/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func String() string {
	return Version + " (commit " + GitCommit + ", built " + BuildTime + ")"
}
