package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"tdm/internal/adapter/http/handler"
	"tdm/internal/adapter/http/middleware"
	"tdm/pkg/metrics"
)

type Handlers struct {
	Contacts  *handler.ContactHandler
	TodoItems *handler.TodoItemHandler
	Users     *handler.UserHandler
}

func SetupRouter(handlers Handlers, appMetrics *metrics.AppMetrics, logger zerolog.Logger) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())
	router.Use(otelgin.Middleware("tdm"))

	var recorder middleware.RateLimitRecorder

	if appMetrics != nil {
		router.Use(appMetrics.GinMiddleware())
		router.GET("/metrics", appMetrics.Handler())
		recorder = appMetrics
	}

	router.Use(middleware.NewRateLimiter(logger, recorder).Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerContactRoutes(router, handlers.Contacts)
	registerTodoItemRoutes(router, handlers.TodoItems)
	registerUserRoutes(router, handlers.Users)

	return router
}

func registerContactRoutes(router *gin.Engine, h *handler.ContactHandler) {
	if h == nil {
		return
	}

	contacts := router.Group("/api/contacts")
	{
		contacts.GET("", h.GetAll)
		contacts.GET("/:id", h.GetByID)
		contacts.GET("/search/name", h.SearchByName)
		contacts.GET("/search/email", h.SearchByEmail)
		contacts.POST("", h.Create)
		contacts.PUT("/:id", h.Update)
		contacts.DELETE("/:id", h.Delete)
		contacts.DELETE("/delete-range", h.DeleteRange)
	}
}

func registerTodoItemRoutes(router *gin.Engine, h *handler.TodoItemHandler) {
	if h == nil {
		return
	}

	items := router.Group("/api/to-do-items")
	{
		items.GET("", h.GetAll)
		items.GET("/:id", h.GetByID)
		items.GET("/contact/:contactId", h.GetByContactID)
		items.GET("/status/:status", h.GetByStatus)
		items.GET("/priority/:priority", h.GetByPriority)
		items.GET("/overdue", h.GetOverdue)
		items.GET("/today", h.GetToday)
		items.GET("/search", h.SearchByTitle)
		items.POST("", h.Create)
		items.PUT("/:id", h.Update)
		items.PUT("/:id/complete", h.Complete)
		items.PUT("/:id/cancel", h.Cancel)
		items.DELETE("/:id", h.Delete)
		items.DELETE("/delete-range", h.DeleteRange)
	}
}

func registerUserRoutes(router *gin.Engine, h *handler.UserHandler) {
	if h == nil {
		return
	}

	users := router.Group("/api/users")
	{
		users.GET("", h.GetAll)
		users.GET("/:id", h.GetByID)
		users.GET("/by-role/:roleId", h.GetByRoleID)
		users.POST("/login", h.Login)
		users.POST("", h.Create)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
		users.DELETE("/delete-range", h.DeleteRange)
	}
}

// SetupRouterForTests skips telemetry and metrics wiring.
func SetupRouterForTests(handlers Handlers, logger zerolog.Logger) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	registerContactRoutes(router, handlers.Contacts)
	registerTodoItemRoutes(router, handlers.TodoItems)
	registerUserRoutes(router, handlers.Users)

	return router
}
