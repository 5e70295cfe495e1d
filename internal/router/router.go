package router

import (
	"html/template"

	"github.com/abcsitio/internal/cache"
	"github.com/abcsitio/internal/config"
	"github.com/abcsitio/internal/handler"
	"github.com/abcsitio/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup configures the Gin engine: sessions, templates, the cached public
// pages and the cookie-gated admin area.
func Setup(gdb *gorm.DB, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("abcsitio_flash", store))

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	r.LoadHTMLGlob("web/template/*/*.html")
	r.Static("/static", "./web/static")

	pages := cache.New()
	api := handler.NewAPI(gdb, cfg, pages)

	// Public pages. The contact page carries per-visitor flash messages and
	// stays out of the render cache.
	cached := r.Group("")
	cached.Use(pages.Middleware())
	{
		cached.GET("/", api.ShowHome)
		cached.GET("/servicios", api.ShowServices)
		cached.GET("/nosotros", api.ShowAbout)
	}
	r.GET("/contacto", api.ShowContact)
	r.POST("/contacto", api.SubmitContact)

	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(api.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/settings", api.ShowSettingsAdmin)
			auth.GET("/services", api.ShowServicesAdmin)
			auth.GET("/highlights", api.ShowHighlightsAdmin)
			auth.GET("/messages", api.ShowMessagesAdmin)

			rest := auth.Group("/api")
			{
				rest.PUT("/settings", api.SaveSettingsBatch)

				registerCollection(rest, "/services", api, service.CollectionServices)
				registerCollection(rest, "/highlights", api, service.CollectionHighlights)
				registerCollection(rest, "/values", api, service.CollectionValues)

				rest.GET("/messages", api.GetMessages)
				rest.PUT("/messages/:id/read", api.ToggleMessageRead)
				rest.DELETE("/messages/:id", api.DeleteMessage)
			}
		}
	}

	return r
}

// registerCollection wires the uniform CRUD routes of one content collection.
func registerCollection(group *gin.RouterGroup, prefix string, api *handler.API, col service.Collection) {
	group.GET(prefix, api.GetContent(col))
	group.POST(prefix, api.CreateContent(col))
	group.PUT(prefix+"/:id", api.UpdateContent(col))
	group.DELETE(prefix+"/:id", api.DeleteContent(col))
}
