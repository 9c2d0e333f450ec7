// Package urlguard decides whether a producer-supplied destination URL is safe
// for the service to fetch and render.
//
// A URL is accepted only when it is an absolute http(s) URL, carries none of
// the known injection or SSRF patterns, is not addressed by IP literal, and
// its host belongs to an allow-listed domain. The allow-list is authoritative;
// the pattern checks are a second layer in front of it.
package urlguard
