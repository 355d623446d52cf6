package version

// Overridden at build time with -ldflags "-X".
var (
	AppName   = "Justine"
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// String returns the version with the commit appended when known.
func String() string {
	if GitCommit == "" {
		return Version
	}
	return Version + " (git: " + GitCommit + ")"
}
