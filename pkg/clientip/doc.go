// Package clientip extracts the originating client IP address from an HTTP
// request, looking through the proxy headers common on CDN and PaaS
// deployments before falling back to the connection's remote address.
//
// Header precedence: CF-Connecting-IP, True-Client-IP, X-Forwarded-For
// (first parseable entry), X-Real-IP, then RemoteAddr. Every candidate is
// validated as an IP literal; spoofable garbage never propagates into the
// fingerprint input.
package clientip
