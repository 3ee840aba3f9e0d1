package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/healthedu/healthedu/internal/config"
	"github.com/healthedu/healthedu/internal/domain/alert"
	"github.com/healthedu/healthedu/internal/domain/chat"
	"github.com/healthedu/healthedu/internal/domain/disease"
	"github.com/healthedu/healthedu/internal/domain/hospital"
	"github.com/healthedu/healthedu/internal/domain/vaccination"
	"github.com/healthedu/healthedu/internal/platform/ai"
	"github.com/healthedu/healthedu/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthedu-server",
		Short: "Healthcare education API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(catalogCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the built-in vaccination schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := vaccination.DefaultCatalog()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tAGE GROUP\tDOSES\tBOOSTER\tIMPORTANCE")
			for _, def := range cat.All() {
				booster := "-"
				if def.BoosterRequired {
					booster = def.BoosterText
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
					def.ID, def.Name, def.AgeGroup, def.Doses, booster, def.Importance)
			}
			return w.Flush()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "X-Request-ID", "X-Session-ID"},
	}))

	// API group
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Vaccination domain
	sessions := vaccination.NewSessionManager(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	sessions.StartPruning(ctx, 5*time.Minute)
	vaccSvc := vaccination.NewService(vaccination.DefaultCatalog(), sessions)
	vaccHandler := vaccination.NewHandler(vaccSvc)
	vaccHandler.RegisterRoutes(apiV1)

	// Disease domain
	diseaseHandler := disease.NewHandler(disease.DefaultCatalog())
	diseaseHandler.RegisterRoutes(apiV1)

	// Hospital domain
	hospitalHandler := hospital.NewHandler(hospital.DefaultDirectory())
	hospitalHandler.RegisterRoutes(apiV1)

	// Health alerts domain
	alertHandler := alert.NewHandler(alert.NewFeed())
	alertHandler.RegisterRoutes(apiV1)

	// Chat domain, registered only when a backend is configured
	if cfg.ChatEnabled() {
		client := ai.NewClient(ai.Config{
			BaseURL: cfg.AIBaseURL,
			APIKey:  cfg.AIAPIKey,
			Model:   cfg.AIModel,
		})
		chatHandler := chat.NewHandler(chat.NewService(client), logger)
		chatHandler.RegisterRoutes(apiV1)
		logger.Info().Str("model", cfg.AIModel).Msg("chat assistant enabled")
	} else {
		logger.Warn().Msg("AI_BASE_URL not set; chat assistant disabled")
	}

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
