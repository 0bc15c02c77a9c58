package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Address = addr
		}
		autoMigrate, _ := cmd.Flags().GetBool("migrate")

		application, err := app.New(cfg)
		if err != nil {
			return err
		}
		defer application.Stop()
		log := application.Logger()

		if autoMigrate {
			if err := application.Migrate(); err != nil {
				return err
			}
		}

		srv := &http.Server{
			Addr:         cfg.Server.Address,
			Handler:      application.Router(),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info("starting server", zap.String("address", cfg.Server.Address))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("server forced to shutdown", zap.Error(err))
		}
		log.Info("server exited")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.address)")
	serveCmd.Flags().Bool("migrate", false, "Run database migrations before serving")
}
