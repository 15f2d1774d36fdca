// @title NutriSnap API
// @version 1.0
// @description Backend del cliente móvil de NutriSnap: onboarding, cálculo de calorías/macros, sesión y dashboard.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nutrisnap/internal/config"
	"nutrisnap/internal/platform/logger"
	"nutrisnap/internal/platform/metrics"
	"nutrisnap/internal/router"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	serve := func(cmd *cobra.Command, _ []string) error {
		return runServer(cmd.Context(), configFile)
	}

	root := &cobra.Command{
		Use:          "nutrisnap-api",
		Short:        "NutriSnap backend",
		SilenceUsage: true,
		RunE:         serve,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml/json/toml); env vars override it")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		RunE:  serve,
	})
	root.AddCommand(newPlanCommand())

	return root
}

func runServer(ctx context.Context, configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, closeBackends, err := router.FromConfig(ctx, cfg, log, metrics.New(nil))
	if err != nil {
		log.Error("backend setup failed", map[string]any{"error": err})
		return err
	}
	defer closeBackends()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error("server error", map[string]any{"error": err})
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
