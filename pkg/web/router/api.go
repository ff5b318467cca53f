package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/mcmikius/TILApp/pkg/common/config"
	"github.com/mcmikius/TILApp/pkg/web/handler"
	"github.com/mcmikius/TILApp/pkg/web/middleware"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Health     *handler.HealthCheckHandler
	Users      *handler.UserHandler
	Categories *handler.CategoryHandler
	Acronyms   *handler.AcronymHandler
	Site       *handler.SiteHandler
	Auth       *middleware.SessionAuth
}

// Register wires the middleware chain, the JSON API and the HTML site.
func Register(h *server.Hertz, cfg *config.Config, hs Handlers) {
	h.Use(
		middleware.RecoveryMiddleware(cfg),
		middleware.LoggerMiddleware(),
		middleware.SecurityCheckMiddleware(cfg.Middleware.Security),
		middleware.TimeoutMiddleware(cfg.Middleware.Timeout.RequestTimeout),
		middleware.CORSMiddleware(cfg.Middleware.CORS),
		middleware.RateLimitMiddleware(
			cfg.Middleware.RateLimit.Rate,
			cfg.Middleware.RateLimit.Interval,
		),
	)

	h.GET("/health", hs.Health.AdvancedHealthCheck)

	requireAuth := hs.Auth.RequireAuthenticated()

	api := h.Group("/api")
	{
		acronyms := api.Group("/acronyms")
		{
			acronyms.GET("", hs.Acronyms.List)
			acronyms.GET("/:id", hs.Acronyms.Get)
			acronyms.POST("", requireAuth, hs.Acronyms.Create)
			acronyms.POST("/:id/categories/:categoryID", requireAuth, hs.Acronyms.AttachCategory)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", hs.Categories.List)
			categories.POST("", hs.Categories.Create)
			categories.GET("/:id", hs.Categories.Get)
			categories.GET("/:id/acronyms", hs.Categories.Acronyms)
		}

		users := api.Group("/users")
		{
			users.GET("", hs.Users.List)
			users.POST("", hs.Users.Create)
			users.POST("/login", hs.Users.Login)
			users.GET("/:id", hs.Users.Get)
			users.GET("/:id/acronyms", hs.Users.Acronyms)
		}
	}

	// Site surface. Static paths win over named parameters, so
	// /acronyms/create coexists with /acronyms/:id.
	h.GET("/", hs.Site.Index)
	h.GET("/login", hs.Site.LoginForm)
	h.POST("/login", hs.Auth.LoginHandler())
	h.POST("/logout", hs.Auth.LogoutHandler())

	h.GET("/acronyms/:id", hs.Site.Acronym)
	h.GET("/users", hs.Site.AllUsers)
	h.GET("/users/:id", hs.Site.User)
	h.GET("/categories", hs.Site.AllCategories)
	h.GET("/categories/:id", hs.Site.Category)

	h.GET("/acronyms/create", requireAuth, hs.Site.CreateAcronymForm)
	h.POST("/acronyms/create", requireAuth, hs.Site.CreateAcronym)
	h.GET("/acronyms/:id/edit", requireAuth, hs.Site.EditAcronymForm)
	h.POST("/acronyms/:id/edit", requireAuth, hs.Site.EditAcronym)
	h.POST("/acronyms/:id/delete", requireAuth, hs.Site.DeleteAcronym)
}
