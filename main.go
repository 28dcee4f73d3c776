package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/backendservices/python-api/internal/config"
	"github.com/backendservices/python-api/internal/models"
	"github.com/backendservices/python-api/internal/router"
	"github.com/backendservices/python-api/internal/services"
	"github.com/backendservices/python-api/internal/sysinfo"
)

// @title python-api
// @version 1.0.0
// @description Health, sample data and platform info endpoints.
// @BasePath /api
func main() {
	// Load .env before flags are parsed so EnvVars fallbacks can see it
	if err := config.LoadEnvFile(os.Getenv("ENV_FILE")); err != nil {
		log.Printf("WARNING: %v", err)
	}

	app := &cli.App{
		Name:    models.ServiceName,
		Usage:   "Health, sample data and platform info HTTP service",
		Version: models.ServiceVersion,
		Flags:   config.CLIFlags(),
		Action:  run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func run(cliCtx *cli.Context) error {
	cfg, err := config.NewConfigFromFlags(cliCtx)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)

	infoService := services.NewInfoService(sysinfo.NewHost(), nil)

	hostname, err := infoService.Hostname()
	if err != nil {
		return err
	}

	r, err := router.New(router.Deps{
		Config:      cfg,
		InfoService: infoService,
	})
	if err != nil {
		return fmt.Errorf("router init: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("Python API Service starting on %s", cfg.Addr())
	log.Printf("Hostname: %s", hostname)

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}
