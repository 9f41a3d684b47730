package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-flow/internal/handler/api"
	"booking-flow/internal/handler/middleware"
	"booking-flow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Catalog *api.CatalogHandler
	Session *api.SessionHandler
	Booking *api.BookingHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	rateLimiter *middleware.RateLimiter,
	gatherer prometheus.Gatherer,
	catalogHandler *api.CatalogHandler,
	sessionHandler *api.SessionHandler,
	bookingHandler *api.BookingHandler,
) {
	setupMiddleware(engine, cfg, logger, rateLimiter)
	setupRoutes(engine, gatherer, Handlers{
		Catalog: catalogHandler,
		Session: sessionHandler,
		Booking: bookingHandler,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, rateLimiter *middleware.RateLimiter) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	if cfg.RateLimit.Enabled {
		engine.Use(rateLimiter.Middleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.ListServices},
			{Method: http.MethodGet, Path: "/providers", Handler: h.Catalog.ListProviders},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
		})

		sessions := apiGroup.Group("/sessions")
		{
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Session.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Session.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Session.End},
				{Method: http.MethodPost, Path: "/:id/service", Handler: h.Session.SelectService},
				{Method: http.MethodPost, Path: "/:id/provider", Handler: h.Session.SelectProvider},
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: h.Session.CalendarMonth},
				{Method: http.MethodGet, Path: "/:id/calendar/:date", Handler: h.Session.DaySlots},
				{Method: http.MethodPost, Path: "/:id/date", Handler: h.Session.SelectDate},
				{Method: http.MethodPost, Path: "/:id/slot", Handler: h.Session.SelectTimeSlot},
				{Method: http.MethodPatch, Path: "/:id/details", Handler: h.Session.EditDetails},
				{Method: http.MethodPost, Path: "/:id/details", Handler: h.Session.SubmitDetails},
				{Method: http.MethodPatch, Path: "/:id/payment", Handler: h.Session.EditPayment},
				{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Session.SubmitPayment},
				{Method: http.MethodPost, Path: "/:id/next", Handler: h.Session.Next},
				{Method: http.MethodPost, Path: "/:id/back", Handler: h.Session.Back},
				{Method: http.MethodPost, Path: "/:id/steps/:step", Handler: h.Session.GoToStep},
				{Method: http.MethodGet, Path: "/:id/summary", Handler: h.Session.Summary},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
