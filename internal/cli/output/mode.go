// Package output renders command output for terminals, markdown consumers
// and machines.
package output

import "strings"

// OutputMode selects how a Renderer formats output.
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Modes lists every accepted mode name.
var Modes = []OutputMode{ModeAuto, ModeText, ModeMarkdown, ModeJSON}

// Mode parses a mode name. Empty and unknown names map to ModeAuto.
func Mode(s string) OutputMode {
	switch OutputMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeText:
		return ModeText
	case ModeMarkdown, "md":
		return ModeMarkdown
	case ModeJSON:
		return ModeJSON
	default:
		return ModeAuto
	}
}

// ValidMode reports whether s names a mode. The empty string is valid and
// means auto.
func ValidMode(s string) bool {
	if s == "" {
		return true
	}
	m := OutputMode(strings.ToLower(strings.TrimSpace(s)))
	if m == "md" {
		return true
	}
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}
