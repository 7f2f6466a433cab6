package server

import (
	"github.com/gin-gonic/gin"

	"freight-backend/internal/anomaly"
	"freight-backend/internal/reports"
	"freight-backend/internal/shared/config"
	"freight-backend/internal/shared/metrics"
	"freight-backend/internal/shared/server/middleware"
	"freight-backend/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
	)

	// The detector is built once from process-wide settings and shared by
	// every request; it is read-only after this point.
	detector := anomaly.New(
		anomaly.WithScorer(anomaly.NewRobustScorer(anomaly.ScorerConfig{
			Contamination: cfg.Detector.Contamination,
			Seed:          cfg.Detector.Seed,
		})),
		anomaly.WithNeutralSeverity(cfg.Detector.NeutralSeverity),
		anomaly.WithHistoryThreshold(cfg.Detector.HistoryMinRecords, cfg.Detector.HistoryFactor),
		anomaly.WithHistorySeverity(cfg.Detector.HistorySeverity),
	)
	anomalyHandler := anomaly.NewHandler(detector)
	reportsHandler := reports.NewHandler()

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	api.GET("/status", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"mensagem": "API funcionando",
			"status":   "ok",
		})
	})
	api.GET("/metrics", metrics.Handler())

	analysis := api.Group("")
	if cfg.RateLimit.Enabled {
		analysis.Use(middleware.RateLimit(middleware.RateLimitRule{
			Rate:  cfg.RateLimit.Rate,
			Burst: cfg.RateLimit.Burst,
		}, nil))
	}
	reportsHandler.RegisterRoutes(analysis)
	anomalyHandler.RegisterRoutes(analysis)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
