package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"remixjokes/src/app/http/response"
)

// CSRFConfig holds configuration for CSRF protection middleware.
type CSRFConfig struct {
	// AllowedOrigins are accepted in addition to the request's own host.
	AllowedOrigins []string
}

// CSRF rejects state-changing requests whose Origin (or, failing that, Referer)
// names a foreign site. The session cookie is SameSite=Lax, so this only has to
// stop cross-origin form posts from browsers, which always send one of the two.
// Requests carrying neither header are let through.
func CSRF(config CSRFConfig) gin.HandlerFunc {
	allowedSet := make(map[string]bool, len(config.AllowedOrigins))
	for _, origin := range config.AllowedOrigins {
		if origin = normalizeOrigin(origin); origin != "" {
			allowedSet[origin] = true
		}
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		source := c.GetHeader("Origin")
		if source == "" || source == "null" {
			if referer := c.GetHeader("Referer"); referer != "" {
				source = extractOrigin(referer)
			}
		}
		if source == "" {
			c.Next()
			return
		}

		if !sameHost(source, c.Request.Host) && !allowedSet[normalizeOrigin(source)] {
			response.Forbidden(c, "cross-site form submission rejected", GetRequestID(c))
			c.Abort()
			return
		}
		c.Next()
	}
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}

// extractOrigin extracts the origin (scheme://host:port) from a URL.
func extractOrigin(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "invalid"
	}
	return parsed.Scheme + "://" + parsed.Host
}

func sameHost(origin, host string) bool {
	parsed, err := url.Parse(normalizeOrigin(origin))
	if err != nil || parsed.Host == "" {
		return false
	}
	return strings.EqualFold(parsed.Host, host)
}
