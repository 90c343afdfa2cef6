package web

import (
	"errors"
	"net/http"
	"strconv"

	"blog/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Index shows the paginated feed of all posts, newest first.
func Index(c *gin.Context) {
	page, err := models.PaginatePosts(models.PostsAll(), c.Query("page"))
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "index.tmpl", gin.H{"Page": page})
}

// GroupPosts shows the feed of a single group.
func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c, err)
		}
		return
	}
	page, err := models.PaginatePosts(models.PostsByGroup(group.ID), c.Query("page"))
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "group_list.tmpl", gin.H{"Group": group, "Page": page})
}

// Profile shows an author page with their posts and total post count.
func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c, err)
		}
		return
	}
	page, err := models.PaginatePosts(models.PostsByAuthor(author.ID), c.Query("page"))
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "profile.tmpl", gin.H{
		"Author": author,
		"Page":   page,
		"Count":  page.Count,
	})
}

// PostDetail shows a single post with its author's total post count.
func PostDetail(c *gin.Context) {
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
	count, err := models.PostCountByAuthor(post.AuthorID)
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "post_detail.tmpl", gin.H{"Post": post, "Count": count})
}
