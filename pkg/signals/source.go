package signals

import (
	"context"
	"net/http"
	"net/netip"

	"github.com/oschwald/geoip2-golang/v2"

	"github.com/dmitrymomot/deviceprint/pkg/clientip"
)

// GeoResolver looks up a GeoIP city record for an address.
// *geoip2.Reader satisfies it.
type GeoResolver interface {
	City(ip netip.Addr) (*geoip2.City, error)
}

// DNSResolver performs reverse DNS lookups. *net.Resolver satisfies it.
type DNSResolver interface {
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// Source is one client observation: the request surface plus the sensor
// telemetry plus optional enrichment backends. A Source is immutable after
// construction and is read by many collectors concurrently.
type Source struct {
	header    http.Header
	clientIP  string
	telemetry Telemetry
	geo       GeoResolver
	resolver  DNSResolver
}

// SourceOption configures optional Source backends.
type SourceOption func(*Source)

// WithGeo attaches a GeoIP resolver, enabling the geo signal.
func WithGeo(g GeoResolver) SourceOption {
	return func(s *Source) { s.geo = g }
}

// WithResolver attaches a DNS resolver for the reverseDns signal.
// Without it the signal resolves to a sentinel.
func WithResolver(r DNSResolver) SourceOption {
	return func(s *Source) { s.resolver = r }
}

// NewSource builds a Source from the incoming request and its telemetry
// payload. The client IP is extracted once, honoring proxy headers.
func NewSource(r *http.Request, t Telemetry, opts ...SourceOption) *Source {
	s := &Source{
		header:    r.Header,
		clientIP:  clientip.GetIP(r),
		telemetry: t,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClientIP returns the extracted client address, which may be empty when
// the request carried no deducible address.
func (s *Source) ClientIP() string { return s.clientIP }

// Telemetry returns the sensor payload attached to this observation.
func (s *Source) Telemetry() Telemetry { return s.telemetry }
