// Package netx holds small helpers for working with request addresses.
package netx

import (
	"net/http"
	"net/netip"
	"strings"
)

// Client address headers in the order they are trusted.
const (
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRealIP         = "X-Real-IP"
	HeaderCFConnectingIP = "CF-Connecting-IP"
)

// ClientIP returns the caller's address as reported by the edge proxy: the
// first entry of X-Forwarded-For, then X-Real-IP, then CF-Connecting-IP.
// It returns "" when none of them is set.
func ClientIP(h http.Header) string {
	if fwd := h.Get(HeaderForwardedFor); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	for _, name := range []string{HeaderRealIP, HeaderCFConnectingIP} {
		if ip := strings.TrimSpace(h.Get(name)); ip != "" {
			return ip
		}
	}
	return ""
}

// IsPrivateIP reports whether ip should not be sent to a geolocation
// service: RFC 1918 and unique-local ranges, loopback, link-local and
// unspecified addresses. Strings that do not parse count as private.
func IsPrivateIP(ip string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return true
	}
	addr = addr.Unmap()

	return addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsUnspecified()
}
