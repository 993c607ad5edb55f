package version

var (
	// Version is set via ldflags during build:
	//
	//	go build -ldflags "-X throbber/internal/version.Version=v0.5.0" ./cmd/throbber-demo
	Version = "dev"
)

// Short returns the version string
func Short() string {
	return Version
}

// Long returns the version with the program name.
func Long(program string) string {
	return program + " " + Version
}
