package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sagarc03/textstore/config"
	textstorehttp "github.com/sagarc03/textstore/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the textstore HTTP server.

Endpoints:
  <base>/writeFile/?text=<value>   append a line to the write file
  <base>/readFile/<filename>       read a .txt file from storage`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 3000, "HTTP server port (env: PORT, TEXTSTORE_SERVER_PORT)")
	serveCmd.Flags().String("base-path", "", "path prefix for all routes, e.g. /api")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	service, storage, err := newService(cfg)
	if err != nil {
		return err
	}

	handlerConfig := textstorehttp.HandlerConfig{
		BasePath: cfg.Server.BasePath,
		CORS:     cfg.CORS,
	}

	handler := textstorehttp.NewHandler(&handlerConfig, service)

	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr:     addr,
		Handler:  handler.Router(),
		ErrorLog: slog.NewLogLogger(slog.Default().Handler(), slog.LevelError),
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			slog.Info("shutting down server...", "signal", sig.String())
		case <-ctx.Done():
			return
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
	}()

	slog.Info("starting server",
		"addr", addr,
		"base_path", cfg.Server.BasePath,
		"storage", storage.Dir(),
		"write_file", service.WriteFile(),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	<-shutdownDone
	slog.Info("server stopped")
	return nil
}
