package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "devevents/docs"
	httpdelivery "devevents/internal/delivery/http"
	"devevents/internal/delivery/http/controllers"
	"devevents/internal/delivery/http/middleware"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()
		logger := a.logger

		mux := httpdelivery.NewRouter(
			controllers.NewEventController(logger, a.events),
			controllers.NewBookingController(logger, a.bookings),
			controllers.NewHealthController(logger, a.stores),
		)
		var handler http.Handler = mux
		handler = middleware.LoggingMiddleware(logger, handler)
		handler = middleware.CORS(a.cfg.CORSAllowedOrigins, handler)
		handler = middleware.RequestID(handler)

		srv := &http.Server{
			Addr:              ":" + a.cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("HTTP server listening", "addr", srv.Addr, "env", a.cfg.Environment)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			logger.Info("received signal, shutting down", "signal", sig)
		case err := <-errCh:
			if err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
		logger.Info("server stopped")
		return nil
	},
}
