package main

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tbourn/go-career-backend/internal/config"
	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/repo"
)

func TestOpenDB_SQLiteMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "career.db")
	db, err := openDB(config.DBConfig{Driver: "sqlite", Path: path, MaxConns: 2, Migrate: true})
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	for _, m := range domain.Models() {
		if !db.Migrator().HasTable(m) {
			t.Fatalf("table for %T not created", m)
		}
	}
}

func TestOpenDB_Errors(t *testing.T) {
	if _, err := openDB(config.DBConfig{Driver: "mysql"}); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported driver error, got %v", err)
	}
	missing := filepath.Join(t.TempDir(), "nope", "career.db")
	if _, err := openDB(config.DBConfig{Driver: "sqlite", Path: missing}); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestPurgeIdempotency_RemovesExpiredUntilCancelled(t *testing.T) {
	db, err := openDB(config.DBConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "p.db"), Migrate: true})
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	ctx := context.Background()
	if _, err := repo.CreateIdempotency(ctx, db, "document.create", "old", "d-1", http.StatusCreated, -time.Minute); err != nil {
		t.Fatalf("seed expired: %v", err)
	}
	if _, err := repo.CreateIdempotency(ctx, db, "document.create", "fresh", "d-2", http.StatusCreated, time.Hour); err != nil {
		t.Fatalf("seed fresh: %v", err)
	}

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	pctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		purgeIdempotency(pctx, db, 10*time.Millisecond, logger)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		var n int64
		db.Model(&domain.Idempotency{}).Count(&n)
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expired record not purged, %d rows left", n)
		}
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("purge loop did not stop after cancellation")
	}
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, ln, time.Second) }()

	resp, err := http.Get("http://" + ln.Addr().String())
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("serve did not stop after context cancellation")
	}
}

func TestServe_ReturnsListenerError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	_ = ln.Close()

	err = serve(context.Background(), &http.Server{}, ln, time.Second)
	if err == nil {
		t.Fatalf("expected error from closed listener")
	}
}
