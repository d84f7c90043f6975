package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/sitebooks_ledger/internal/commands"
	"github.com/SscSPs/sitebooks_ledger/internal/platform/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := commands.NewRootCommand(commands.NewEnvironment(cfg, logger)).Execute(); err != nil {
		os.Exit(1)
	}
}
