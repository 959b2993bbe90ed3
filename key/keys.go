// Package key defines the canonical set of configuration identifiers.
package key

// Logging - diagnostics written to the logs directory.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Network - transport used for player API calls.
const (
	NetworkTimeout        = "network.timeout"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Resolution of video identifiers.
const (
	ResolveParallel        = "resolve.parallel"
	ResolveRemember        = "resolve.remember"
	ResolveShowSuggestions = "resolve.show_suggestions"
)

// Playback.
const (
	Player = "player.default"
)
