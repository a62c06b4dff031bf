package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-busca-rescore/internal/api/handlers"
	"github.com/prefeitura-rio/app-busca-rescore/internal/config"
	middlewares "github.com/prefeitura-rio/app-busca-rescore/internal/middleware"
	"github.com/prefeitura-rio/app-busca-rescore/internal/search"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfg *config.Config, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(corsMiddleware())
	r.Use(middlewares.Tracing())
	r.Use(middlewares.RequestID())

	rescorer := search.NewRescorer(cfg.Rescore.MaxWindowSize, log)

	rescoreHandler := handlers.NewRescoreHandler(rescorer, cfg.Rescore.Defaults, log)
	healthHandler := handlers.NewHealthHandler(rescorer, cfg.Rescore.Defaults)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/rescore", rescoreHandler.Rescore)
		api.GET("/rescore/explain", rescoreHandler.Explain)
	}

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID, traceparent")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
