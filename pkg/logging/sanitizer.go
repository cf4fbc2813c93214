package logging

import (
	"regexp"
)

const (
	// MaxQueryLogLength is the maximum length of a user query to log
	MaxQueryLogLength = 200
	// RedactedText is the replacement text for sensitive data
	RedactedText = "[REDACTED]"
)

var (
	// Pattern to match provider API keys passed in URLs or error text
	// (sk-..., sk-ant-..., key=... forms)
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|apikey|key)=[A-Za-z0-9-_]{20,}`)

	// Bare OpenAI/Anthropic style secret tokens
	secretTokenPattern = regexp.MustCompile(`\bsk-[A-Za-z0-9-_]{16,}\b`)

	// Bearer tokens in error messages bubbled up from HTTP clients
	bearerPattern = regexp.MustCompile(`Bearer\s+[A-Za-z0-9-_.]+`)
)

// SanitizeError sanitizes error messages that might contain provider
// credentials. Use this before logging any error from a completion call.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	sanitized := apiKeyPattern.ReplaceAllString(err.Error(), "${1}="+RedactedText)
	sanitized = secretTokenPattern.ReplaceAllString(sanitized, RedactedText)
	sanitized = bearerPattern.ReplaceAllString(sanitized, "Bearer "+RedactedText)

	return sanitized
}

// SanitizeQuery truncates a user query for logging. Queries are user
// text, not secrets, but they can be arbitrarily long.
func SanitizeQuery(query string) string {
	sanitized := apiKeyPattern.ReplaceAllString(query, "${1}="+RedactedText)
	sanitized = secretTokenPattern.ReplaceAllString(sanitized, RedactedText)
	return TruncateString(sanitized, MaxQueryLogLength)
}

// TruncateString truncates a string to maxLen and adds ellipsis if needed
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
