// Package cookie manages the session cookie.
package cookie

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"remixjokes/src/infra/config"
)

// Jar reads and writes the session cookie.
type Jar struct {
	name   string
	maxAge int
	domain string
	secure bool
}

// NewJar creates a Jar from the session configuration.
func NewJar(cfg config.SessionConfig) *Jar {
	return &Jar{
		name:   cfg.CookieName,
		maxAge: int(cfg.MaxAge.Seconds()),
		domain: cfg.Domain,
		secure: cfg.Secure,
	}
}

// Set stores the session token.
func (j *Jar) Set(c *gin.Context, token string) {
	j.set(c, token, j.maxAge)
}

// Clear expires the session cookie on the client.
func (j *Jar) Clear(c *gin.Context) {
	j.set(c, "", -1)
}

// Read returns the session token, or "" when the cookie is absent.
func (j *Jar) Read(c *gin.Context) string {
	token, err := c.Cookie(j.name)
	if err != nil {
		return ""
	}
	return token
}

func (j *Jar) set(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		j.name,
		value,
		maxAge,
		"/",
		j.domain,
		j.secure,
		true, // httpOnly
	)
}
