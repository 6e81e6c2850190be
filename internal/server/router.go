package server

import (
	"html/template"
	"net/http"

	"dems-portal/internal/config"
	"dems-portal/internal/handlers"
	"dems-portal/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"eq":  func(a, b interface{}) bool { return a == b },
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
		"str": func(p *string) string {
			if p == nil {
				return ""
			}
			return *p
		},
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30, // сессия живёт 30 дней
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("dems_session", store))

	r.Use(middleware.InjectUser())

	// ГЛАВНАЯ
	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/login", middleware.RedirectIfAuthed(), handlers.ShowLogin)
	r.POST("/login", middleware.RedirectIfAuthed(), handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// ДАШБОРД И ВОРОНКА
	auth.GET("/dashboard", handlers.Dashboard)
	auth.POST("/dashboard/reorder", handlers.ReorderRows)

	auth.POST("/projects", handlers.CreateProject)
	auth.GET("/projects/:id", handlers.ShowProject)
	auth.POST("/projects/:id", handlers.UpdateProject)
	auth.POST("/projects/:id/delete", handlers.DeleteProject)

	// СОТРУДНИКИ — только админ
	users := auth.Group("/users")
	users.Use(middleware.RequireAdmin("Only admins can access the users page"))
	users.GET("", handlers.ListUsers)
	users.POST("", handlers.CreateUser)
	users.POST("/:id/delete", handlers.DeleteUser)

	// ВХОДЯЩИЕ — только админ
	messages := auth.Group("/messages")
	messages.Use(middleware.RequireAdmin("Only admins can access messages"))
	messages.GET("", handlers.ListMessages)
	messages.GET("/:id", handlers.ShowMessage)

	// КОМПОЗЕР
	auth.GET("/quickcreate", handlers.ShowCompose)
	auth.POST("/quickcreate", handlers.SendEmail)

	// ЗАГЛУШКИ
	placeholders := map[string]string{
		"/tasks":         "Tasks",
		"/calendar":      "Calendar",
		"/data-library":  "Data Library",
		"/reports":       "Reports",
		"/documentation": "Documentation",
		"/settings":      "Settings",
		"/help":          "Help",
		"/search":        "Search",
		"/analytics":     "Analytics",
	}
	for path, title := range placeholders {
		auth.GET(path, handlers.ComingSoon(title))
	}

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
