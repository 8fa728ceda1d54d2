package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agropulse/internal/api/handlers"
	"agropulse/internal/api/middleware"
	"agropulse/internal/config"
	"agropulse/internal/forecast"
	"agropulse/internal/history"
	"agropulse/internal/warehouse"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// .env is optional; real environment variables still apply without it.
	_ = godotenv.Load()
}

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	level, _ := zerolog.ParseLevel(cfg.Logging.Level)
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load the model warehouse. A missing artifact degrades to an empty
	// warehouse so the service stays reachable; a corrupt one is fatal.
	wh, err := warehouse.Load(cfg.Data.ModelFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Data.ModelFile).Msg("failed to load model warehouse")
	}
	if wh.Len() == 0 {
		log.Warn().Str("path", cfg.Data.ModelFile).Msg("no models loaded, predictions will fail")
	} else {
		log.Info().Strs("models", wh.Items()).Msg("loaded model warehouse")
	}

	// Historical data is best-effort: charts are empty if it cannot be read.
	records, err := history.LoadCSV(cfg.Data.HistoryFile)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Data.HistoryFile).Msg("history dataset unavailable, charts will be empty")
	}
	store := history.NewStore(records)
	if !store.Empty() {
		log.Info().Int("rows", store.Rows()).Msg("loaded historical data")
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger(log.Logger))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(wh, store)
	historyHandler := handlers.NewHistoryHandler(store)
	predictHandler := handlers.NewPredictHandler(forecast.New(wh))

	router.GET("/", healthHandler.Home)
	router.GET("/history/:item_id", historyHandler.GetHistory)
	router.GET("/history/:item_id/stats", historyHandler.GetStats)
	router.POST("/predict", predictHandler.Predict)

	// Serve the dashboard build if it exists (SPA routing for non-API paths).
	if _, err := os.Stat(cfg.Server.StaticDir); err == nil {
		router.Static("/assets", filepath.Join(cfg.Server.StaticDir, "assets"))
		router.StaticFile("/favicon.ico", filepath.Join(cfg.Server.StaticDir, "favicon.ico"))
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if strings.HasPrefix(path, "/history") || path == "/predict" {
				c.JSON(404, gin.H{"error": "Not found"})
				return
			}
			c.File(filepath.Join(cfg.Server.StaticDir, "index.html"))
		})
		log.Info().Str("dir", cfg.Server.StaticDir).Msg("serving static files")
	} else {
		log.Debug().Str("dir", cfg.Server.StaticDir).Msg("static directory not found, skipping static file serving")
	}

	addr := ":" + cfg.Server.Port
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
