package urlguard

import (
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength bounds the input size accepted by Validate.
const DefaultMaxLength = 2000

const maxPort = 65535

var ipv4Literal = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`) //nolint: gochecknoglobals

// Options configure a Validator.
type Options struct {
	// MaxLength is the maximum accepted input length in characters. Zero
	// means DefaultMaxLength.
	MaxLength int
}

// Validator checks destination URLs against the pattern rules and an
// AllowList. It holds no per-call state and is safe for concurrent use.
type Validator struct {
	allowList *AllowList
	options   Options
}

// New returns a Validator backed by the given allow-list.
func New(allowList *AllowList, options Options) *Validator {
	if options.MaxLength <= 0 {
		options.MaxLength = DefaultMaxLength
	}
	if allowList == nil {
		allowList = &AllowList{}
	}

	return &Validator{allowList: allowList, options: options}
}

// AllowList returns the allow-list consulted by the validator.
func (v *Validator) AllowList() *AllowList { return v.allowList }

// Validate decides whether raw is safe to fetch. The checks run in a fixed
// order and the first failing one determines the reason: emptiness, length,
// URL syntax, scheme, malicious patterns, IP literal host, and finally the
// domain allow-list.
func (v *Validator) Validate(raw string) Result {
	in := strings.TrimSpace(raw)
	if in == "" {
		return reject(ErrEmptyInput, "URL is empty")
	}
	if n := utf8.RuneCountInString(in); n > v.options.MaxLength {
		return reject(ErrTooLong, "URL is %d characters long, the maximum is %d", n, v.options.MaxLength)
	}

	u, err := url.Parse(in)
	if err != nil || u.Scheme == "" {
		return reject(ErrMalformed, "URL is not a valid absolute URL")
	}
	if scheme := strings.ToLower(u.Scheme); scheme != "http" && scheme != "https" {
		return reject(ErrProtocolNotAllowed, "protocol %q is not allowed, use http or https", scheme)
	}
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return reject(ErrMalformed, "URL has no host")
	}
	if !validPort(u.Port()) {
		return reject(ErrMalformed, "URL port %q is out of range", u.Port())
	}

	sanitized := canonicalize(u)
	if category, found := findMaliciousPattern(in, sanitized); found {
		return reject(ErrMaliciousPattern, "URL contains a disallowed pattern (%s)", category)
	}

	if ipv4Literal.MatchString(host) || net.ParseIP(host) != nil {
		return reject(ErrDirectIPNotAllowed, "URLs addressed by IP are not allowed, use a domain name")
	}

	if !v.allowList.Matches(host) {
		return reject(ErrDomainNotAllowlisted, "domain %q is not in the list of allowed platforms", host)
	}

	return accept(sanitized)
}

// validPort accepts an empty port or a decimal one within 0-65535.
func validPort(port string) bool {
	if port == "" {
		return true
	}
	n, err := strconv.Atoi(port)

	return err == nil && n >= 0 && n <= maxPort
}

// Sanitize is a convenience wrapper returning the sanitized URL or the
// rejection as an error.
func (v *Validator) Sanitize(raw string) (string, error) {
	r := v.Validate(raw)

	return r.SanitizedURL, r.Err()
}
