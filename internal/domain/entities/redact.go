package entities

import (
	"net/url"
	"strings"
)

const redactedSecret = "***"

// RedactURL hides the userinfo of a URL (token or user:password pair).
// Strings that do not parse as URLs with userinfo are returned unchanged.
func RedactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.User == nil {
		return raw
	}

	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return raw
	}
	at := strings.Index(rest, "@")
	if at < 0 {
		return raw
	}
	return scheme + "://" + redactedSecret + rest[at:]
}

// RedactCommand returns a copy of the command with every argument passed through RedactURL.
func RedactCommand(command []string) []string {
	redacted := make([]string, len(command))
	for i, arg := range command {
		redacted[i] = RedactURL(arg)
	}
	return redacted
}
