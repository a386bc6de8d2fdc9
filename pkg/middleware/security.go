package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ecotours/pkg/utils"
)

type SecurityOptions struct {
	SSLRedirect bool
	HSTSSeconds int
	// Exempt paths are never redirected, e.g. load balancer probes.
	Exempt []string
}

func SecurityHeaders(opts SecurityOptions) gin.HandlerFunc {
	hsts := ""
	if opts.HSTSSeconds > 0 {
		hsts = fmt.Sprintf("max-age=%d; includeSubDomains; preload", opts.HSTSSeconds)
	}

	return func(c *gin.Context) {
		secure := isSecure(c.Request)
		if opts.SSLRedirect && !secure && !exempt(c.Request.URL.Path, opts.Exempt) {
			target := "https://" + c.Request.Host + c.Request.URL.RequestURI()
			c.Redirect(http.StatusMovedPermanently, target)
			c.Abort()
			return
		}

		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")
		if hsts != "" && secure {
			h.Set("Strict-Transport-Security", hsts)
		}
		c.Next()
	}
}

func isSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// AllowedHosts rejects requests whose Host is not listed. A "*" entry allows
// any host; entries starting with "." match the domain and its subdomains.
func AllowedHosts(hosts []string, exemptPaths ...string) gin.HandlerFunc {
	allowAll := false
	for _, h := range hosts {
		if h == "*" {
			allowAll = true
		}
	}

	return func(c *gin.Context) {
		if allowAll || exempt(c.Request.URL.Path, exemptPaths) || hostAllowed(c.Request.Host, hosts) {
			c.Next()
			return
		}
		utils.RespondError(c, http.StatusBadRequest, "Invalid Host header")
	}
}

func hostAllowed(hostport string, hosts []string) bool {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	host = strings.ToLower(host)

	for _, pattern := range hosts {
		pattern = strings.ToLower(pattern)
		if strings.HasPrefix(pattern, ".") {
			if host == pattern[1:] || strings.HasSuffix(host, pattern) {
				return true
			}
			continue
		}
		if host == pattern {
			return true
		}
	}
	return false
}

func exempt(path string, paths []string) bool {
	for _, p := range paths {
		if path == p {
			return true
		}
	}
	return false
}
