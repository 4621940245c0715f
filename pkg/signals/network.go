package signals

import (
	"context"
	"net/netip"
	"sort"
	"strings"

	"github.com/dmitrymomot/deviceprint/pkg/fingerprint"
)

func ip(_ context.Context, src *Source) any {
	if src.clientIP != "" {
		return src.clientIP
	}
	return fingerprint.NotAvailable
}

func acceptHeaders(_ context.Context, src *Source) any {
	return map[string]any{
		"accept":         src.header.Get("Accept"),
		"acceptLanguage": src.header.Get("Accept-Language"),
		"acceptEncoding": src.header.Get("Accept-Encoding"),
	}
}

// stableHeaders are the request headers whose presence set distinguishes
// browser families without varying per navigation.
var stableHeaders = map[string]struct{}{
	"user-agent":                {},
	"accept":                    {},
	"accept-language":           {},
	"accept-encoding":           {},
	"connection":                {},
	"upgrade-insecure-requests": {},
	"sec-fetch-dest":            {},
	"sec-fetch-mode":            {},
	"sec-fetch-site":            {},
	"cache-control":             {},
}

// headerOrder reduces the request's header set to a canonical signature.
// Names are sorted so identical header sets always serialize identically.
func headerOrder(_ context.Context, src *Source) any {
	var names []string
	for name := range src.header {
		lower := strings.ToLower(name)
		if _, ok := stableHeaders[lower]; ok {
			names = append(names, lower)
		}
	}
	if len(names) == 0 {
		return fingerprint.Unknown
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// geo resolves the client address against the GeoIP database. Deferred:
// the lookup touches the database file.
func geo(_ context.Context, src *Source) any {
	if src.geo == nil || src.clientIP == "" {
		return fingerprint.NotAvailable
	}
	addr, err := netip.ParseAddr(src.clientIP)
	if err != nil {
		return fingerprint.NotAvailable
	}
	record, err := src.geo.City(addr)
	if err != nil || record == nil {
		return fingerprint.NotAvailable
	}
	return map[string]any{
		"country":  record.Country.ISOCode,
		"timezone": record.Location.TimeZone,
	}
}

// reverseDNS resolves the client address to its PTR name. Deferred: the
// lookup goes out to the network and honors ctx cancellation.
func reverseDNS(ctx context.Context, src *Source) any {
	if src.resolver == nil || src.clientIP == "" {
		return fingerprint.NotAvailable
	}
	names, err := src.resolver.LookupAddr(ctx, src.clientIP)
	if err != nil || len(names) == 0 {
		return fingerprint.NotAvailable
	}
	return strings.TrimSuffix(names[0], ".")
}
