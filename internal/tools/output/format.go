package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mode selects how results are rendered.
type Mode string

const (
	// ModeJSON renders results as pretty-printed JSON. Lossless.
	ModeJSON Mode = "json"

	// ModeMarkdown renders lists as tables and single objects as labeled
	// field blocks. Lossy but easier for agents to summarize.
	ModeMarkdown Mode = "markdown"
)

// ParseMode parses a user-supplied format argument. The empty string maps to
// the JSON default; anything unrecognized is an error so typos surface
// instead of silently falling back.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeJSON):
		return ModeJSON, nil
	case string(ModeMarkdown), "md":
		return ModeMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected %q or %q)", s, ModeJSON, ModeMarkdown)
	}
}

// Formatter renders API values into response text. It is stateless apart
// from its configuration and safe for concurrent use.
type Formatter struct {
	config *Config
}

// NewFormatter creates a Formatter. A nil config uses defaults.
func NewFormatter(config *Config) *Formatter {
	if config == nil {
		config = DefaultConfig()
	}
	return &Formatter{config: config.Validate()}
}

// Format renders v in the given mode. The label names the result set in
// markdown headings ("Boards", "Sticky Note", ...). JSON mode ignores it.
func (f *Formatter) Format(v any, mode Mode, label string) (string, error) {
	var (
		rendered string
		err      error
	)
	switch mode {
	case ModeMarkdown:
		rendered, err = f.renderMarkdown(v, label)
	default:
		rendered, err = renderJSON(v)
	}
	if err != nil {
		return "", err
	}
	return f.truncate(rendered), nil
}

// renderJSON pretty-prints v without dropping any fields.
func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding response: %w", err)
	}
	return string(data), nil
}

// truncate enforces the response character budget. The cut is by character
// count, not by structure; the appended notice tells the agent the output
// is partial and how to get less of it.
func (f *Formatter) truncate(s string) string {
	limit := f.config.MaxResponseChars
	if len(s) <= limit {
		return s
	}
	return cutOnRuneBoundary(s, limit) + fmt.Sprintf(
		"\n\n_Output truncated at %d characters. Use a smaller limit or request a narrower result set._", limit)
}

// cutOnRuneBoundary returns s truncated to at most limit bytes, backing up
// so the cut never splits a multibyte rune. Callers guarantee limit < len(s).
func cutOnRuneBoundary(s string, limit int) string {
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
