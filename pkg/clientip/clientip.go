package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// proxyHeaders in precedence order. Single-value headers only;
// X-Forwarded-For is handled separately because it is a list.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"True-Client-IP",
}

// GetIP returns the client's IP address for the request, or an empty string
// when no candidate parses as an IP literal.
func GetIP(r *http.Request) string {
	for _, h := range proxyHeaders {
		if ip := canonical(r.Header.Get(h)); ip != "" {
			return ip
		}
	}

	// X-Forwarded-For accumulates one entry per hop; the first parseable
	// entry is the original client.
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for _, part := range strings.Split(forwarded, ",") {
			if ip := canonical(part); ip != "" {
				return ip
			}
		}
	}

	if ip := canonical(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return canonical(host)
}

// canonical validates raw as an IP literal and returns its canonical string
// form, stripping any IPv6 zone. Returns "" for anything unparseable.
func canonical(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	// Some proxies forward entries with a port attached.
	if host, _, err := net.SplitHostPort(raw); err == nil {
		raw = host
	}
	raw = strings.Trim(raw, "[]")

	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return ""
	}
	return addr.WithZone("").String()
}
