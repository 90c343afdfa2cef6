package models

import (
	"strconv"

	"gorm.io/gorm"
)

const PostsPerPage = 10

// PostPage is one fixed-size slice of an ordered post listing.
type PostPage struct {
	Posts    []Post
	Number   int
	NumPages int
	Count    int64
}

func (p PostPage) HasPrev() bool   { return p.Number > 1 }
func (p PostPage) HasNext() bool   { return p.Number < p.NumPages }
func (p PostPage) PrevNumber() int { return p.Number - 1 }
func (p PostPage) NextNumber() int { return p.Number + 1 }

// PaginatePosts slices the given listing query into pages of PostsPerPage.
// An unparsable page parameter means page 1; out-of-range numbers clamp to
// the first or last page rather than failing. An empty listing still yields
// a single (empty) page.
func PaginatePosts(query *gorm.DB, pageParam string) (page PostPage, err error) {
	if err = query.Session(&gorm.Session{}).Count(&page.Count).Error; err != nil {
		return
	}
	page.NumPages = int((page.Count + PostsPerPage - 1) / PostsPerPage)
	if page.NumPages < 1 {
		page.NumPages = 1
	}
	page.Number, _ = strconv.Atoi(pageParam)
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Number > page.NumPages {
		page.Number = page.NumPages
	}
	err = query.Session(&gorm.Session{}).
		Preload("Author").
		Preload("Group").
		Offset((page.Number - 1) * PostsPerPage).
		Limit(PostsPerPage).
		Find(&page.Posts).Error
	return
}
