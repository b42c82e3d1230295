package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/relaykit/intake/components/wizard"
	"github.com/relaykit/intake/internal/config"
	"github.com/relaykit/intake/internal/logger"
	"github.com/relaykit/intake/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("intake-server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := buildStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	component, err := wizard.New(
		wizard.WithSessions(session.NewCarrier(store, log)),
		wizard.WithLogger(log),
		wizard.WithCookieName(cfg.Session.CookieName),
	)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mount, err := component.RegisterRoutes(mux, cfg.Server.BasePath)
	if err != nil {
		return err
	}
	if mount != "/" {
		mux.Handle("/", http.RedirectHandler(mount, http.StatusFound))
	}

	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("intake-server listening",
			zap.String("addr", cfg.Server.Address),
			zap.String("base_path", mount),
			zap.String("session_backend", cfg.Session.Backend))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func buildStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (session.Store, func(), error) {
	if cfg.Session.Backend != "redis" {
		return session.NewMemoryStore(), func() {}, nil
	}

	store, err := session.NewRedisStore(ctx, session.RedisConfig{
		Address:  cfg.Session.Redis.Address,
		Password: cfg.Session.Redis.Password,
		DB:       cfg.Session.Redis.DB,
		TTL:      time.Duration(cfg.Session.TTLHours) * time.Hour,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Info("session store connected", zap.String("redis", cfg.Session.Redis.Address))
	return store, func() { _ = store.Close() }, nil
}
