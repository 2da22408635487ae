package main

import (
	"log/slog"
	"os"

	"github.com/brisabank/bank_ledger_app/internal/console"
	"github.com/brisabank/bank_ledger_app/internal/core/services"
	"github.com/brisabank/bank_ledger_app/internal/repositories/memory"
	"github.com/brisabank/bank_ledger_app/pkg/config"
)

func main() {
	// Keep service logs out of the interactive prompt; only warnings and
	// errors reach stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := memory.New()
	svcContainer := services.NewServiceContainer(repos.Client, repos.Account, services.AccountDefaults{
		Branch:         cfg.BranchCode,
		CheckingLimit:  cfg.CheckingLimit,
		MaxWithdrawals: cfg.CheckingMaxWithdrawals,
	})

	if err := console.NewRootCommand(svcContainer).Execute(); err != nil {
		os.Exit(1)
	}
}
