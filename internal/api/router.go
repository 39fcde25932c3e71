package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/magda-harmony/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/magda-harmony/internal/api/middleware"
	"github.com/Conceptual-Machines/magda-harmony/internal/chart"
	"github.com/Conceptual-Machines/magda-harmony/internal/config"
	"github.com/Conceptual-Machines/magda-harmony/internal/metrics"
	"github.com/Conceptual-Machines/magda-harmony/internal/services"
)

func SetupRouter(
	cfg *config.Config,
	chordService *services.ChordService,
	chartParser *chart.Parser,
	recorder metrics.Recorder,
	version string,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(recorder))

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.CORSAllowedOrigins))

	// Health check
	healthHandler := handlers.NewHealthHandler(chordService)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, chordService)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	v1 := router.Group("/api/v1")
	{
		chordHandler := handlers.NewChordHandler(chordService, cfg.DefaultOctave)
		v1.POST("/chords/parse", chordHandler.Parse)
		v1.POST("/chords/midi", chordHandler.MIDI)
		v1.GET("/chords/examples", chordHandler.Examples)
		v1.POST("/notes/interval", chordHandler.Interval)
		v1.GET("/circle", chordHandler.Circle)

		chartHandler := handlers.NewChartHandler(chordHandler, chartParser)
		v1.POST("/charts", chartHandler.Render)
	}

	return router
}
