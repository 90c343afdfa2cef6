package auth

import (
	"net/http"
	"net/url"
	"strings"

	"blog/models"

	"github.com/gin-gonic/gin"
)

const LoginURL = "/auth/login/"

const contextUserKey = "user"

// RequireLogin guards write paths. Anonymous visitors are bounced to the
// login page with the original URL preserved so they land back here after
// signing in.
func RequireLogin(c *gin.Context) {
	user := LoadSession(c).User()
	if user.ID == 0 {
		c.Redirect(http.StatusFound, loginRedirectURL(c.Request.URL.RequestURI()))
		c.Abort()
		return
	}
	c.Set(contextUserKey, user)
	c.Next()
}

// loginRedirectURL escapes the original URL into the next parameter.
// Slashes stay readable; a query string in next must not leak its own
// parameters into the login URL.
func loginRedirectURL(next string) string {
	return LoginURL + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}

// CurrentUser returns the authenticated account for the request, or a zero-ID
// User. Behind RequireLogin this is a context lookup; on public pages it
// falls back to the session.
func CurrentUser(c *gin.Context) models.User {
	if v, ok := c.Get(contextUserKey); ok {
		if user, ok := v.(models.User); ok {
			return user
		}
	}
	return LoadSession(c).User()
}
