package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/musicallyvk/TrackingNumberService/internal/config"
	"github.com/musicallyvk/TrackingNumberService/internal/countries"
	"github.com/musicallyvk/TrackingNumberService/internal/generator"
	"github.com/musicallyvk/TrackingNumberService/internal/handler"
	pkglog "github.com/musicallyvk/TrackingNumberService/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Level == "debug",
		ServiceName: "tracking-service",
	})
	logger := pkglog.L()

	// Country table: built-in defaults plus config overrides
	table := countries.Default().With(cfg.Countries)

	// Initialize tracking-number generator
	gen, err := generator.New(generator.Config{
		DatacenterID: cfg.Snowflake.DatacenterID,
		WorkerID:     cfg.Snowflake.WorkerID,
		Epoch:        cfg.Snowflake.Epoch,
		SuffixLength: cfg.Suffix.Length,
		Countries:    table,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create tracking generator")
	}
	logger.Info().
		Int64(pkglog.FieldDatacenterID, cfg.Snowflake.DatacenterID).
		Int64(pkglog.FieldWorkerID, cfg.Snowflake.WorkerID).
		Int64("epoch", cfg.Snowflake.Epoch).
		Int("countries", table.Len()).
		Msg("tracking generator initialized")

	// Initialize HTTP handler
	httpHandler := handler.NewHandler(gen)

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Register routes
	httpHandler.RegisterRoutes(r)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("tracking-service starting")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
