package texttranslator

// Version information for the text translator.
// These values can be overridden at build time using ldflags:
//
//	go build -ldflags "-X github.com/YourCarma/text-translator.GitCommit=$(git rev-parse HEAD)"
const (
	// Name is the application name.
	Name = "text-translator"

	// Description is a short description of the application.
	Description = "Service for text translating with LLM"

	// Version is the semantic version of the application.
	Version = "0.9.0"
)

// BuildInfo contains build-time information.
var (
	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// FullVersion returns the version string with optional build info.
func FullVersion() string {
	v := Version
	if GitCommit != "unknown" && GitCommit != "" {
		short := GitCommit
		if len(short) > 7 {
			short = short[:7]
		}
		v += "+" + short
	}
	return v
}

// UserAgent returns the user agent sent to LLM providers.
func UserAgent() string {
	return Name + "/" + Version
}
