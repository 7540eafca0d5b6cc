package version

// version is overridden at build time with
// -ldflags "-X github.com/cbodonnell/pong/pkg/version.version=<tag>"
var version = "dev"

// Get returns the build version.
func Get() string {
	return version
}
