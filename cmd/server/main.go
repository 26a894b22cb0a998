package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/Ayato964/RunMeMe/internal/api"
	"github.com/Ayato964/RunMeMe/internal/config"
	"github.com/Ayato964/RunMeMe/internal/scores"
	"github.com/Ayato964/RunMeMe/internal/stages"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	Addr    string `short:"a" help:"Listen address (overrides config)"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
}

func main() {
	kong.Parse(&CLI)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// .env is optional; config.Load picks up the variables it sets.
	_ = godotenv.Load()

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if CLI.Addr != "" {
		cfg.Addr = CLI.Addr
	}

	catalog, err := buildCatalog(cfg)
	if err != nil {
		slog.Error("Failed to open stage catalog", "error", err)
		os.Exit(1)
	}
	defer catalog.Close()

	server := api.NewServer(catalog, scores.NewBoard())
	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Routes(),
	}

	go func() {
		slog.Info("server_listening", "addr", cfg.Addr, "catalog_backend", cfg.CatalogBackend)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
	slog.Info("server_stopped")
}

func buildCatalog(cfg *config.Config) (stages.Catalog, error) {
	if cfg.CatalogBackend == "sqlite" {
		catalog, err := stages.NewSQLiteCatalog(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := catalog.Migrate(); err != nil {
			return nil, err
		}
		return catalog, nil
	}
	return stages.NewDirCatalog(cfg.StagesDir), nil
}
