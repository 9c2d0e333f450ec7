package urlguard

import (
	"net"
	"net/url"
	"strings"
)

// canonicalize returns the canonical serialization of an absolute http(s) URL:
//   - Lower-case the scheme and host, drop a trailing dot from the host
//   - Drop default ports (http:80, https:443), keep non-default ports
//   - An empty path becomes "/"
//
// Path, query and fragment are otherwise preserved as supplied since they are
// meaningful to the destination page.
func canonicalize(u *url.URL) string {
	c := *u
	c.Scheme = strings.ToLower(c.Scheme)

	host := strings.TrimSuffix(strings.ToLower(c.Hostname()), ".")
	port := c.Port()
	if (c.Scheme == "http" && port == "80") || (c.Scheme == "https" && port == "443") {
		port = ""
	}

	switch {
	case port != "":
		c.Host = net.JoinHostPort(host, port)
	case strings.Contains(host, ":"):
		// IPv6 literal without port still needs brackets.
		c.Host = "[" + host + "]"
	default:
		c.Host = host
	}

	if c.Path == "" {
		c.Path = "/"
		c.RawPath = ""
	}

	return c.String()
}
