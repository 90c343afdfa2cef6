package models

import (
	"blog/db"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var ErrBlankText = errors.New("post text must not be blank")

type Post struct {
	ID       uint64    `gorm:"primaryKey"`
	PubDate  time.Time `gorm:"index:feed_order,priority:2"`
	AuthorID uint64
	Author   User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID  *uint64 `gorm:"index:feed_order,priority:1"`
	Group    *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text     string  `gorm:"type:text"`
}

// PostCreate persists a new post. The author and publication date are fixed
// here and never change afterwards.
func PostCreate(text string, authorID uint64, groupID *uint64) (p Post, err error) {
	if strings.TrimSpace(text) == "" {
		return Post{}, ErrBlankText
	}
	p.Text = text
	p.PubDate = time.Now()
	p.AuthorID = authorID
	p.GroupID = groupID
	return p, db.Instance.Create(&p).Error
}

// PostUpdate overwrites text and group only. Callers must have verified
// authorship first.
func PostUpdate(post *Post, text string, groupID *uint64) error {
	if strings.TrimSpace(text) == "" {
		return ErrBlankText
	}
	err := db.Instance.Model(post).Updates(map[string]interface{}{
		"text":     text,
		"group_id": groupID,
	}).Error
	if err != nil {
		return err
	}
	post.Text = text
	post.GroupID = groupID
	post.Group = nil
	return nil
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}

// PostsAll returns the base feed query, newest first. The id tiebreaker keeps
// the order stable for posts sharing a publication timestamp.
func PostsAll() *gorm.DB {
	return db.Instance.Model(&Post{}).Order("pub_date DESC, id DESC")
}

func PostsByGroup(groupID uint64) *gorm.DB {
	return PostsAll().Where("group_id = ?", groupID)
}

func PostsByAuthor(userID uint64) *gorm.DB {
	return PostsAll().Where("author_id = ?", userID)
}

func PostCountByAuthor(userID uint64) (count int64, err error) {
	err = db.Instance.Model(&Post{}).Where("author_id = ?", userID).Count(&count).Error
	return
}
