package middleware

import (
	"context"
	"net/url"

	"github.com/gin-gonic/gin"

	"remixjokes/src/app/http/response"
)

const (
	// UserIDKey holds the authenticated user's id, when there is one.
	UserIDKey = "user_id"

	sessionTokenKey = "session_token"
)

// SessionResolver maps a session token to a user id.
type SessionResolver interface {
	UserID(ctx context.Context, token string) (string, bool)
}

// TokenReader extracts the session token from a request.
type TokenReader interface {
	Read(c *gin.Context) string
}

// Session resolves the session cookie on every request. It never rejects:
// an absent or invalid session simply leaves the user id unset.
func Session(sessions SessionResolver, cookies TokenReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookies.Read(c)
		if token != "" {
			c.Set(sessionTokenKey, token)
			if userID, ok := sessions.UserID(c.Request.Context(), token); ok {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// RequireUser redirects anonymous requests to the login page, remembering where they were headed.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserID(c) == "" {
			response.Redirect(c, LoginRedirect(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginRedirect builds the login URL that returns to path afterwards.
func LoginRedirect(path string) string {
	return "/login?" + url.Values{"redirectTo": {path}}.Encode()
}

// GetUserID returns the authenticated user's id, or "".
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetSessionToken returns the raw session token sent with the request, or "".
func GetSessionToken(c *gin.Context) string {
	return c.GetString(sessionTokenKey)
}
