// Package greeting answers a single conversational opener.
package greeting

import "strings"

const (
	// Hello is returned when the message is "hi", ignoring case and surrounding whitespace.
	Hello = "Hello! How can I help you today?"
	// Fallback is returned for every other message.
	Fallback = "Hi there!"
)

// Greet responds to a greeting message.
func Greet(message string) string {
	if isHi(strings.TrimSpace(message)) {
		return Hello
	}
	return Fallback
}

// isHi matches "hi" in any ASCII case. Non-ASCII letters never lower to
// plain "hi" (U+0130 lowers to "i" plus a combining dot), so the match is bytewise.
func isHi(s string) bool {
	return len(s) == 2 &&
		(s[0] == 'h' || s[0] == 'H') &&
		(s[1] == 'i' || s[1] == 'I')
}
