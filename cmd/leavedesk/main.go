package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/leavedesk/leavedesk/internal/app"
	"github.com/leavedesk/leavedesk/internal/leave"
	"github.com/leavedesk/leavedesk/internal/observability"
	"github.com/leavedesk/leavedesk/internal/platform/cache"
	"github.com/leavedesk/leavedesk/internal/verify"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, logger *slog.Logger) error {
	store := leave.NewStore(leave.SeedRecords())
	metrics := observability.NewMetrics()

	mode := cfg.VerificationMode()
	var verifier leave.Verifier
	if mode.IsEnabled() {
		var redisClient *redis.Client
		if cfg.RedisAddr != "" {
			client, err := cache.New(ctx, cfg.RedisAddr)
			if err != nil {
				return err
			}
			defer func() {
				if err := client.Close(); err != nil {
					logger.Warn("redis close", slog.Any("error", err))
				}
			}()
			redisClient = client
		}
		verifier = verify.NewClient(mode.Secret(), verify.Options{
			VerifyURL: cfg.CaptchaVerifyURL,
			Timeout:   cfg.CaptchaTimeout,
			MinScore:  cfg.CaptchaMinScore,
			Replay:    verify.NewReplayGuard(redisClient, cfg.CaptchaReplayTTL),
		})
	}

	service := leave.NewService(leave.ServiceParams{
		Logger:   logger,
		Store:    store,
		Mode:     mode,
		Verifier: verifier,
		Recorder: metrics,
	})
	leaveHandler := leave.NewHandler(logger, service, app.LookupLimiter(cfg))

	assets, err := app.StaticAssets(cfg)
	if err != nil {
		logger.Warn("static assets unavailable", slog.Any("error", err))
		assets = nil
	}

	router := app.NewRouter(app.RouterParams{
		Logger:       logger,
		Config:       cfg,
		LeaveHandler: leaveHandler,
		Metrics:      metrics,
		Assets:       assets,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server",
			slog.String("addr", cfg.AppAddr),
			slog.Int("records", store.Len()),
			slog.String("verification", mode.String()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.AppShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
