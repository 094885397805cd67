package ui

// DisplayConfig holds configuration for UI rendering
type DisplayConfig struct {
	// Truncation limits
	MaxPreviewLines int
	MaxAuthorLength int

	// Display lengths
	CommitHashDisplayLength int
	DefaultTerminalWidth    int
}

// DefaultConfig returns the default display configuration
func DefaultConfig() DisplayConfig {
	return DisplayConfig{
		MaxPreviewLines: 5,
		MaxAuthorLength: 20,

		CommitHashDisplayLength: 7,
		DefaultTerminalWidth:    120,
	}
}

// Global display configuration (can be overridden)
var Display = DefaultConfig()
