package output

// Default limits for rendered responses.
// These are tuned for typical LLM context windows.
const (
	// DefaultMaxResponseChars is the default hard limit on rendered
	// response size.
	DefaultMaxResponseChars = 50_000

	// AbsoluteMaxResponseChars is the absolute maximum response size.
	// This bounds memory use even when callers request higher limits.
	AbsoluteMaxResponseChars = 400_000

	// maxCellChars caps the width of a single markdown table cell.
	maxCellChars = 80
)

// Config holds configuration for response rendering.
type Config struct {
	// MaxResponseChars is a hard limit on rendered response size in
	// characters. Default: 50000, absolute max: 400000.
	MaxResponseChars int `json:"maxResponseChars"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxResponseChars: DefaultMaxResponseChars,
	}
}

// Validate returns a validated copy with out-of-range values capped.
func (c *Config) Validate() *Config {
	validated := *c
	if validated.MaxResponseChars <= 0 {
		validated.MaxResponseChars = DefaultMaxResponseChars
	}
	if validated.MaxResponseChars > AbsoluteMaxResponseChars {
		validated.MaxResponseChars = AbsoluteMaxResponseChars
	}
	return &validated
}
