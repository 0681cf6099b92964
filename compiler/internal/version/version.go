package version

// Bumped by hand until releases are automated.
const (
	semver = "0.1.0"
	stage  = "Stage-0"
)

// String returns the human-readable toolchain version.
func String() string {
	return "lumac " + semver + " (" + stage + ")"
}
