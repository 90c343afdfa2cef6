package web

import (
	"time"

	"blog/auth"
	"blog/config"
	"blog/db"
	"blog/templates"
	"blog/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 14 * 86400 // 2 weeks
)

// CreateRouter assembles the full application router. db.Init and models.Init
// must have run first; the session store lives in the database.
func CreateRouter() *gin.Engine {
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	router.SetHTMLTemplate(templates.Load())

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	// Public read paths
	router.GET("/", Index)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)

	// Account pages
	router.GET("/auth/login/", Login)
	router.POST("/auth/login/", Login)
	router.POST("/auth/logout/", Logout)
	router.GET("/auth/signup/", Signup)
	router.POST("/auth/signup/", Signup)
	router.GET("/auth/password_reset/", PasswordReset)
	router.POST("/auth/password_reset/", PasswordReset)

	// Write paths require a logged-in identity. The id check runs before the
	// auth gate: a malformed post URL is an unknown page, not a login problem.
	router.GET("/create/", auth.RequireLogin, utils.NoCache, PostCreate)
	router.POST("/create/", auth.RequireLogin, utils.NoCache, PostCreate)
	router.GET("/posts/:id/edit/", validPostID, auth.RequireLogin, utils.NoCache, PostEdit)
	router.POST("/posts/:id/edit/", validPostID, auth.RequireLogin, utils.NoCache, PostEdit)

	router.NoRoute(notFound)
	return router
}
