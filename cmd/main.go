package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"salon-booking/cmd/bootstrap"
	"salon-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// release unless GIN_MODE says otherwise
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv(gin.EnvGinMode); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           Salon Booking API
// @version         1.0
// @description     Provider catalog, availability, booking drafts, payment verification and the admin back office.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Invoke(registerServer),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		slog.Error("api failed to start", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()
	slog.Info("shutting down", "signal", sig.Signal)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("unclean shutdown", "error", err)
		os.Exit(1)
	}
}

// registerServer ties the HTTP listener to the fx lifecycle. The write timeout leaves room
// for the bounded payment poll behind POST /payments/:orderId/verify.
func registerServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	poll := time.Duration(cfg.Payment.PollAttempts) * cfg.Payment.PollDelay
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      poll + 30*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("api listening", "addr", srv.Addr, "mode", gin.Mode(), "write_timeout", srv.WriteTimeout)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("api listener stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
