package web

import (
	"errors"
	"net/http"
	"strings"

	"blog/auth"
	"blog/config"
	"blog/models"
	"blog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Login serves the login form and signs the user in, honoring the next
// parameter carried over from a rejected write attempt.
func Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "login.tmpl", gin.H{
			"Next":     c.Query("next"),
			"Username": "",
			"Error":    nil,
		})
		return
	}
	form := LoginForm{}
	_ = c.ShouldBindWith(&form, binding.Form)
	user, ok := models.UserLogin(form.Username, form.Password)
	if !ok {
		render(c, http.StatusOK, "login.tmpl", gin.H{
			"Next":     form.Next,
			"Username": form.Username,
			"Error":    "Please enter a correct username and password.",
		})
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, safeNext(form.Next))
}

// Logout clears the session.
func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

// Signup creates a new account and sends the visitor to the feed.
func Signup(c *gin.Context) {
	form := SignupForm{}
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindWith(&form, binding.Form); err != nil {
			render(c, http.StatusOK, "signup.tmpl", gin.H{
				"Form":   form,
				"Errors": map[string]string{"username": "Invalid submission."},
			})
			return
		}
		formErrors := form.Validate()
		if len(formErrors) == 0 {
			if _, err := models.UserCreate(form.Username, form.FirstName, form.LastName, form.Email, form.Password1); err != nil {
				serverError(c, err)
				return
			}
			c.Redirect(http.StatusFound, "/")
			return
		}
		render(c, http.StatusOK, "signup.tmpl", gin.H{"Form": form, "Errors": formErrors})
		return
	}
	render(c, http.StatusOK, "signup.tmpl", gin.H{"Form": form, "Errors": map[string]string{}})
}

// PasswordReset relays the submitted message to the site administrator.
// Header injection attempts get a plain error response; the process never
// fails on malformed input.
func PasswordReset(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "password_reset_form.tmpl", gin.H{"Sent": false})
		return
	}
	subject := c.PostForm("subject")
	message := c.PostForm("message")
	fromEmail := c.PostForm("from_email")
	err := utils.SendMail(subject, message, fromEmail, config.RESET_EMAIL_RECIPIENT)
	if errors.Is(err, utils.ErrBadHeader) {
		c.String(http.StatusOK, "Invalid header found.")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "password_reset_form.tmpl", gin.H{"Sent": true})
}

// safeNext only follows site-local redirect targets.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
