package format

import (
	"html"
	"strings"
)

// EscapeHTML escapes text for Telegram HTML parse mode.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// Bold wraps already-escaped text in bold tags.
func Bold(text string) string {
	return "<b>" + text + "</b>"
}

// Lines joins non-empty parts with newlines, skipping blanks.
func Lines(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, "\n")
}
