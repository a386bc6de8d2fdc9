package utils

import (
	"context"
	"net/http"
	"strings"
)

type originKey struct{}

// WithOrigin stores the scheme://host of the current request in ctx.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey{}, strings.TrimRight(origin, "/"))
}

func OriginFromContext(ctx context.Context) (string, bool) {
	origin, ok := ctx.Value(originKey{}).(string)
	return origin, ok && origin != ""
}

// RequestOrigin derives scheme://host for r, trusting X-Forwarded-Proto from
// the reverse proxy in front of the service when it names http or https.
func RequestOrigin(r *http.Request) string {
	if r.Host == "" {
		return ""
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	proto := strings.ToLower(strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-Proto"), ",")[0]))
	if proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// MediaURL resolves a stored image reference for output: nil when nothing is
// stored, the absolute URL when the request origin is known, the stored
// reference otherwise. References that are already absolute are returned as is.
func MediaURL(ctx context.Context, stored string) *string {
	if stored == "" {
		return nil
	}
	if isAbsoluteURL(stored) {
		return &stored
	}
	origin, ok := OriginFromContext(ctx)
	if !ok {
		return &stored
	}
	abs := origin + "/" + strings.TrimLeft(stored, "/")
	return &abs
}

// StoredRef returns nil for an empty stored reference.
func StoredRef(stored string) *string {
	if stored == "" {
		return nil
	}
	return &stored
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "//")
}
