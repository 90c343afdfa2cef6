package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"blog/config"
	"blog/db"
	"blog/models"

	"github.com/gin-gonic/gin"
)

// setupTest builds the full router on top of a fresh SQLite database.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = filepath.Join(t.TempDir(), "test.db")
	db.Init()
	models.Init()
	return CreateRouter()
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// login signs in through the real login endpoint and returns the session
// cookies for subsequent requests.
func login(t *testing.T, router *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/auth/login/",
		url.Values{"username": {username}, "password": {password}}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("login: expected redirect, got %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login: no session cookie set")
	}
	return cookies
}

func createUser(t *testing.T, username string) models.User {
	t.Helper()
	u, err := models.UserCreate(username, "Test", "User", username+"@example.com", "password123")
	if err != nil {
		t.Fatalf("UserCreate(%s): %v", username, err)
	}
	return u
}

func createGroup(t *testing.T, slug string) models.Group {
	t.Helper()
	g, err := models.GroupCreate(slug, "Group "+slug, "A test group")
	if err != nil {
		t.Fatalf("GroupCreate(%s): %v", slug, err)
	}
	return g
}

func createPost(t *testing.T, text string, authorID uint64, groupID *uint64) models.Post {
	t.Helper()
	p, err := models.PostCreate(text, authorID, groupID)
	if err != nil {
		t.Fatalf("PostCreate: %v", err)
	}
	return p
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}
