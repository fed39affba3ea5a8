// Command cleanup-tokens purges password reset tokens that can no longer be
// redeemed. Meant to run from cron next to the sweep.
//
// Usage:
//
//	cleanup-tokens [--grace=24h]
//
// Tokens are kept for --grace after expiry so recent reset attempts remain
// visible while debugging.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres"
	tokenrepo "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/campusdesk-backend/internal/app"
	"github.com/heartmarshall/campusdesk-backend/internal/config"
)

func main() {
	grace := flag.Duration("grace", 0, "keep tokens this long past expiry")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	cutoff := time.Now().UTC().Add(-*grace)
	n, err := tokenrepo.New(pool).DeleteExpired(ctx, cutoff)
	if err != nil {
		logger.Error("cleanup reset tokens", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("reset tokens purged",
		slog.Int64("deleted", n),
		slog.Time("cutoff", cutoff),
	)
}
