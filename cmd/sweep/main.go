// Command sweep escalates overdue grievances, auto-closes resolved ones and
// counts expired opportunities.
//
// Usage:
//
//	sweep [--once] [--dry-run]
//
// Without --once it repeats every sweep.interval until interrupted.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/campusdesk-backend/internal/app"
	"github.com/heartmarshall/campusdesk-backend/internal/config"
)

func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	dryRun := flag.Bool("dry-run", false, "report what would change without writing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *dryRun {
		cfg.Sweep.DryRun = true
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := app.Build(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("build: %v", err)
	}
	defer cleanup()

	if !*once {
		logger.Info("sweep loop started", slog.Duration("interval", cfg.Sweep.Interval))
		if err := deps.Sweep.Loop(ctx, cfg.Sweep.Interval); err != nil {
			logger.Error("sweep loop", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	report, err := deps.Sweep.Run(ctx)
	if err != nil {
		logger.Error("sweep", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("sweep finished",
		slog.Int("escalated", report.Escalated),
		slog.Int("closed", report.Closed),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Int("expired_opportunities", report.ExpiredOpportunities),
		slog.Bool("dry_run", cfg.Sweep.DryRun),
	)
}
