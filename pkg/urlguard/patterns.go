package urlguard

import (
	"regexp"
	"strings"
)

// privateIPv4 matches dotted-quad loopback and RFC 1918 addresses anywhere in
// a string, but not as part of a longer number.
var privateIPv4 = regexp.MustCompile( //nolint: gochecknoglobals
	`(?:^|[^0-9])(?:127\.0\.0\.\d{1,3}|10\.\d{1,3}\.\d{1,3}\.\d{1,3}|192\.168\.\d{1,3}\.\d{1,3}|` +
		`172\.(?:1[6-9]|2\d|3[01])\.\d{1,3}\.\d{1,3})(?:$|[^0-9])`)

// matcher flags one category of dangerous content. Inputs are lower-cased
// before matching.
type matcher struct {
	category string
	match    func(s string) bool
}

func containsAny(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}

		return false
	}
}

// maliciousPatterns is evaluated in order; the first hit wins.
var maliciousPatterns = []matcher{ //nolint: gochecknoglobals
	{
		category: "shell metacharacter",
		match:    containsAny("$(", "`", "||", "&&", ";"),
	},
	{
		category: "loopback or private network address",
		match: func(s string) bool {
			return containsAny("localhost", "::1", "0.0.0.0")(s) || privateIPv4.MatchString(s)
		},
	},
	{
		category: "embedded non-http scheme",
		match:    containsAny("file://", "jar://", "ftp://", "javascript:", "data:", "vbscript:"),
	},
	{
		category: "encoded control character",
		match:    containsAny("%00", "%0d", "%0a"),
	},
}

// findMaliciousPattern returns the category of the first matcher that hits any
// of the given strings.
func findMaliciousPattern(candidates ...string) (string, bool) {
	lowered := make([]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = strings.ToLower(c)
	}

	for _, m := range maliciousPatterns {
		for _, c := range lowered {
			if m.match(c) {
				return m.category, true
			}
		}
	}

	return "", false
}
