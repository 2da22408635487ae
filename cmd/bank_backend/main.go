package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/brisabank/bank_ledger_app/internal/core/services"
	"github.com/brisabank/bank_ledger_app/internal/handlers"
	"github.com/brisabank/bank_ledger_app/internal/middleware"
	"github.com/brisabank/bank_ledger_app/internal/repositories/memory"
	"github.com/brisabank/bank_ledger_app/pkg/config"
)

// @title Retail Banking Ledger API
// @version 1.0
// @description Clients, accounts and the transactions that mutate account balances.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The whole ledger is memory-resident; state lives exactly as long as
	// the process.
	repos := memory.New()
	svcContainer := services.NewServiceContainer(repos.Client, repos.Account, services.AccountDefaults{
		Branch:         cfg.BranchCode,
		CheckingLimit:  cfg.CheckingLimit,
		MaxWithdrawals: cfg.CheckingMaxWithdrawals,
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit configuration", slog.String("error", err.Error()), slog.String("rate", cfg.RateLimit))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
