package signals

import (
	"context"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/deviceprint/pkg/fingerprint"
	"github.com/dmitrymomot/deviceprint/pkg/useragent"
)

func userAgent(_ context.Context, src *Source) any {
	if ua := src.header.Get("User-Agent"); ua != "" {
		return ua
	}
	return fingerprint.Unknown
}

func languageSignal(_ context.Context, src *Source) any {
	if l := src.telemetry.Language; l != "" {
		return l
	}
	if tags := acceptLanguages(src); len(tags) > 0 {
		return tags[0]
	}
	return fingerprint.Unknown
}

func languages(_ context.Context, src *Source) any {
	if l := src.telemetry.Languages; len(l) > 0 {
		return l
	}
	if tags := acceptLanguages(src); len(tags) > 0 {
		return tags
	}
	return fingerprint.Unknown
}

// acceptLanguages parses the Accept-Language header into ordered BCP 47
// tags. A malformed header yields nil rather than an error.
func acceptLanguages(src *Source) []string {
	raw := src.header.Get("Accept-Language")
	if raw == "" {
		return nil
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	return out
}

func platform(_ context.Context, src *Source) any {
	if p := src.telemetry.Platform; p != "" {
		return p
	}
	// Client hint values arrive quoted, e.g. `"macOS"`.
	if p := strings.Trim(src.header.Get("Sec-CH-UA-Platform"), `"`); p != "" {
		return p
	}
	return fingerprint.Unknown
}

func vendor(_ context.Context, src *Source) any {
	if v := src.telemetry.Vendor; v != "" {
		return v
	}
	return fingerprint.Unknown
}

func doNotTrack(_ context.Context, src *Source) any {
	if v := src.telemetry.DoNotTrack; v != "" {
		return v
	}
	if v := src.header.Get("DNT"); v != "" {
		return v
	}
	return fingerprint.NotSupported
}

func cookiesEnabled(_ context.Context, src *Source) any {
	if v := src.telemetry.CookiesEnabled; v != nil {
		return *v
	}
	return fingerprint.Unknown
}

func browserName(_ context.Context, src *Source) any {
	return parsedUA(src, func(ua useragent.UserAgent) string { return ua.Browser() })
}

func browserVersion(_ context.Context, src *Source) any {
	return parsedUA(src, func(ua useragent.UserAgent) string { return ua.BrowserVersion() })
}

func osName(_ context.Context, src *Source) any {
	return parsedUA(src, func(ua useragent.UserAgent) string { return ua.OS() })
}

func deviceType(_ context.Context, src *Source) any {
	return parsedUA(src, func(ua useragent.UserAgent) string { return ua.DeviceType() })
}

func parsedUA(src *Source, pick func(useragent.UserAgent) string) any {
	raw := src.header.Get("User-Agent")
	if raw == "" {
		return fingerprint.Unknown
	}
	if v := pick(useragent.Parse(raw)); v != "" {
		return v
	}
	return fingerprint.Unknown
}
