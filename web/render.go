package web

import (
	"net/http"
	"strconv"

	"blog/auth"

	"github.com/gin-gonic/gin"
)

// render injects the current user (when logged in) and draws the page.
func render(c *gin.Context, status int, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["CurrentUser"]; !ok {
		if user := auth.CurrentUser(c); user.ID != 0 {
			data["CurrentUser"] = user
		} else {
			data["CurrentUser"] = nil
		}
	}
	c.HTML(status, template, data)
}

// validPostID 404s URLs whose id segment is not a number.
func validPostID(c *gin.Context) {
	if _, err := strconv.ParseUint(c.Param("id"), 10, 64); err != nil {
		notFound(c)
		return
	}
	c.Next()
}

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.tmpl", nil)
	c.Abort()
}

func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	render(c, http.StatusInternalServerError, "500.tmpl", nil)
	c.Abort()
}
