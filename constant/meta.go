// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Vidsel is the canonical application identifier used for filesystem paths and CLI branding.
	Vidsel = "vidsel"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Repository is the upstream source repository, used for release checks.
	Repository = "vidsel/vidsel"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
