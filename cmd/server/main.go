// Command server runs the career platform HTTP API.
//
// @title       Career Platform API
// @version     1.0
// @description Members, resume documents, organizations and job postings. Every failure is an apperr.Envelope.
// @BasePath    /Dijkstra/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/config"
	httpapi "github.com/tbourn/go-career-backend/internal/http"
	"github.com/tbourn/go-career-backend/internal/observability"
	"github.com/tbourn/go-career-backend/internal/repo"
	"github.com/tbourn/go-career-backend/internal/sysutil"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

const purgeInterval = 10 * time.Minute

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log.Logger = sysutil.NewLogger(os.Stdout, cfg.LogPretty, cfg.OTEL.ServiceName)
	sysutil.SetLogLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped cleanly")
}

func run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			logger.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := openDB(cfg.DB)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	logger.Info().Str("driver", cfg.DB.Driver).Bool("migrated", cfg.DB.Migrate).Msg("database ready")

	bg, cancelBG := context.WithCancel(ctx)
	defer cancelBG()
	go purgeIdempotency(bg, db, purgeInterval, logger)

	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	logger.Info().Str("addr", ln.Addr().String()).Str("base_path", cfg.APIBasePath).Str("version", version).Msg("server starting")
	return serve(ctx, srv, ln, cfg.ShutdownTimeout)
}

// openDB opens the configured backend and applies the schema when enabled.
func openDB(c config.DBConfig) (*gorm.DB, error) {
	opts := repo.Options{MaxOpenConns: c.MaxConns, Quiet: true}
	switch c.Driver {
	case "postgres":
		if c.Migrate {
			if err := repo.Migrate(c.URL); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return repo.OpenPostgres(c.URL, opts)
	case "sqlite", "":
		db, err := repo.OpenSQLite(c.Path, opts)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if c.Migrate {
			if err := repo.AutoMigrate(db); err != nil {
				return nil, fmt.Errorf("automigrate: %w", err)
			}
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

// purgeIdempotency deletes expired idempotency records every interval until
// ctx is done.
func purgeIdempotency(ctx context.Context, db *gorm.DB, every time.Duration, logger zerolog.Logger) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := repo.PurgeExpiredIdempotency(ctx, db, now.UTC())
			if err != nil {
				logger.Warn().Err(err).Msg("idempotency purge failed")
				continue
			}
			if n > 0 {
				logger.Debug().Int64("purged", n).Msg("idempotency records purged")
			}
		}
	}
}

// serve runs srv on ln until ctx is cancelled, then drains in-flight requests
// for at most grace.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
