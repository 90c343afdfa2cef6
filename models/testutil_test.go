package models

import (
	"path/filepath"
	"testing"
	"time"

	"blog/config"
	"blog/db"
)

// setupTestDB points the global DB at a fresh SQLite file and migrates it.
func setupTestDB(t *testing.T) {
	t.Helper()
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = filepath.Join(t.TempDir(), "test.db")
	db.Init()
	Init()
}

func mustUser(t *testing.T, username string) User {
	t.Helper()
	u, err := UserCreate(username, "Test", "User", username+"@example.com", "password123")
	if err != nil {
		t.Fatalf("UserCreate(%s): %v", username, err)
	}
	return u
}

func mustGroup(t *testing.T, slug string) Group {
	t.Helper()
	g, err := GroupCreate(slug, "Group "+slug, "A test group")
	if err != nil {
		t.Fatalf("GroupCreate(%s): %v", slug, err)
	}
	return g
}

// mustPostAt inserts a post with an explicit publication time, bypassing
// PostCreate so ordering tests can control the clock.
func mustPostAt(t *testing.T, text string, authorID uint64, groupID *uint64, pubDate time.Time) Post {
	t.Helper()
	p := Post{Text: text, PubDate: pubDate, AuthorID: authorID, GroupID: groupID}
	if err := db.Instance.Create(&p).Error; err != nil {
		t.Fatalf("insert post %q: %v", text, err)
	}
	return p
}
