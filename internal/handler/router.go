package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "venue-booking/docs"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, draftHandler *api.DraftHandler, venueHandler *api.VenueHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, draftHandler, venueHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.ForwardAccessToken())
}

func setupRoutes(engine *gin.Engine, draftHandler *api.DraftHandler, venueHandler *api.VenueHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		venues := apiGroup.Group("/venues")
		addRoutes(venues, []route{
			{Method: http.MethodGet, Path: "/:id/availability", Handler: venueHandler.Availability},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: venueHandler.Quote},
		})

		drafts := apiGroup.Group("/drafts")
		addRoutes(drafts, []route{
			{Method: http.MethodPost, Path: "", Handler: draftHandler.Start},
			{Method: http.MethodGet, Path: "/:id", Handler: draftHandler.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: draftHandler.Discard},
			{Method: http.MethodPut, Path: "/:id/dates", Handler: draftHandler.SelectDates},
			{Method: http.MethodPut, Path: "/:id/guests", Handler: draftHandler.SelectGuests},
			{Method: http.MethodPost, Path: "/:id/summary", Handler: draftHandler.OpenSummary},
			{Method: http.MethodDelete, Path: "/:id/summary", Handler: draftHandler.CloseSummary},
			{Method: http.MethodPost, Path: "/:id/submit", Handler: draftHandler.Submit},
			{Method: http.MethodPost, Path: "/:id/reset", Handler: draftHandler.Reset},
		})
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
