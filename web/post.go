package web

import (
	"errors"
	"net/http"
	"strconv"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// PostCreate serves the new-post form and handles its submission.
// RequireLogin has already run.
func PostCreate(c *gin.Context) {
	user := auth.CurrentUser(c)
	form := PostForm{}
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindWith(&form, binding.Form); err != nil {
			renderPostForm(c, &form, map[string]string{"text": "Invalid submission."}, false)
			return
		}
		groupID, formErrors := form.Validate()
		if len(formErrors) == 0 {
			if _, err := models.PostCreate(form.Text, user.ID, groupID); err != nil {
				serverError(c, err)
				return
			}
			c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
			return
		}
		renderPostForm(c, &form, formErrors, false)
		return
	}
	renderPostForm(c, &form, map[string]string{}, false)
}

// PostEdit lets the author change a post's text and group. Any other logged-in
// user is sent to the read-only detail page with no error shown.
func PostEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c, err)
		}
		return
	}
	detailURL := "/posts/" + strconv.FormatUint(post.ID, 10) + "/"
	user := auth.CurrentUser(c)
	if user.ID != post.AuthorID {
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	// The form is bound fresh on POST: an empty group select means
	// "no group", it must not fall back to the stored value.
	form := PostForm{}
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindWith(&form, binding.Form); err != nil {
			renderPostForm(c, &form, map[string]string{"text": "Invalid submission."}, true)
			return
		}
		groupID, formErrors := form.Validate()
		if len(formErrors) == 0 {
			if err := models.PostUpdate(&post, form.Text, groupID); err != nil {
				serverError(c, err)
				return
			}
			c.Redirect(http.StatusFound, detailURL)
			return
		}
		renderPostForm(c, &form, formErrors, true)
		return
	}
	form.Text = post.Text
	if post.GroupID != nil {
		form.Group = strconv.FormatUint(*post.GroupID, 10)
	}
	renderPostForm(c, &form, map[string]string{}, true)
}

func renderPostForm(c *gin.Context, form *PostForm, formErrors map[string]string, isEdit bool) {
	groups, err := models.GroupsAll()
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "create_post.tmpl", gin.H{
		"Form":   form,
		"Errors": formErrors,
		"Groups": groups,
		"IsEdit": isEdit,
	})
}
