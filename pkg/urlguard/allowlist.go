package urlguard

import (
	"net"
	"presell/pkg/serrors"
	"strings"
	"sync"
)

const maxDomainLength = 253

// AllowList is an ordered set of trusted domain suffixes. A host matches a
// suffix when it equals it or ends with "." followed by it, so trusting
// "example.com" admits "shop.example.com" but never "evilexample.com".
//
// It is safe for concurrent use; Trust may be called while other goroutines
// validate URLs.
type AllowList struct {
	mu       sync.RWMutex
	suffixes []string
	index    map[string]struct{}
}

// NewAllowList builds an allow-list from the given domains. Invalid entries
// are reported as an error.
func NewAllowList(domains ...string) (*AllowList, error) {
	a := &AllowList{index: make(map[string]struct{}, len(domains))}
	for _, d := range domains {
		if _, err := a.Trust(d); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// NormalizeDomain lower-cases and trims a domain pattern, strips a leading
// "*." or "." and a trailing ".", and checks that what remains is a
// multi-label DNS name rather than an IP literal.
func NormalizeDomain(raw string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(raw))
	d = strings.TrimPrefix(d, "*.")
	d = strings.TrimPrefix(d, ".")
	d = strings.TrimSuffix(d, ".")

	if d == "" {
		return "", serrors.With(serrors.ErrBadRequest, "domain is empty")
	}
	if len(d) > maxDomainLength {
		return "", serrors.With(serrors.ErrBadRequest, "domain is longer than %d characters", maxDomainLength)
	}
	if net.ParseIP(strings.Trim(d, "[]")) != nil {
		return "", serrors.With(serrors.ErrBadRequest, "IP addresses cannot be trusted: %q", raw)
	}

	labels := strings.Split(d, ".")
	if len(labels) < 2 {
		return "", serrors.With(serrors.ErrBadRequest, "domain must have at least two labels: %q", raw)
	}
	for _, l := range labels {
		if !validLabel(l) {
			return "", serrors.With(serrors.ErrBadRequest, "invalid domain label %q in %q", l, raw)
		}
	}
	if isNumeric(labels[len(labels)-1]) {
		return "", serrors.With(serrors.ErrBadRequest, "top-level label cannot be numeric: %q", raw)
	}

	return d, nil
}

func validLabel(l string) bool {
	if l == "" || len(l) > 63 || l[0] == '-' || l[len(l)-1] == '-' {
		return false
	}
	for i := range len(l) {
		c := l[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return false
		}
	}

	return true
}

func isNumeric(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return s != ""
}

// Trust adds a domain suffix to the allow-list and returns its normalized
// form. Adding an already trusted domain is a no-op.
//
// Trust is an administrative operation; it must never be driven by end-user
// input.
func (a *AllowList) Trust(domain string) (string, error) {
	d, err := NormalizeDomain(domain)
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.index == nil {
		a.index = make(map[string]struct{})
	}
	if _, ok := a.index[d]; !ok {
		a.index[d] = struct{}{}
		a.suffixes = append(a.suffixes, d)
	}

	return d, nil
}

// Matches reports whether host belongs to one of the trusted domains.
func (a *AllowList) Matches(host string) bool {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if host == "" {
		return false
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, suffix := range a.suffixes {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}

	return false
}

// Domains returns a copy of the trusted suffixes in insertion order.
func (a *AllowList) Domains() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]string, len(a.suffixes))
	copy(out, a.suffixes)

	return out
}
