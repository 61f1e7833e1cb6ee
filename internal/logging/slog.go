package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyTool     = "tool"
	KeyBoardID  = "board_id"
	KeyItemID   = "item_id"
	KeyItemType = "item_type"
	KeyDuration = "duration"
	KeyStatus   = "status"
	KeyError    = "error"
	KeyToken    = "token"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// NewLogger builds a slog.Logger writing to w with the given level and
// format ("json" or "text"). Unknown values fall back to info/json.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.ToLower(format) == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// Tool returns a slog attribute for the tool name.
func Tool(name string) slog.Attr {
	return slog.String(KeyTool, name)
}

// BoardID returns a slog attribute for the board identifier.
func BoardID(id string) slog.Attr {
	return slog.String(KeyBoardID, id)
}

// ItemID returns a slog attribute for the item identifier.
func ItemID(id string) slog.Attr {
	return slog.String(KeyItemID, id)
}

// ItemType returns a slog attribute for the item type.
func ItemType(t string) slog.Attr {
	return slog.String(KeyItemType, t)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// SanitizeToken returns a masked version of a token for logging.
// It returns a length indicator without exposing any token content,
// as even partial token prefixes can aid attacks.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}

// Token returns a slog attribute with the masked access token.
func Token(token string) slog.Attr {
	return slog.String(KeyToken, SanitizeToken(token))
}
