package version

// values are set via ldflags on release builds
var (
	Version     = "dev"
	BuildDate   = ""
	FullVersion = Version
)
