// Command server runs the campus console HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) with ENV
// overrides. SIGINT and SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/campusdesk-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
