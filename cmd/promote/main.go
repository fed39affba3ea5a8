// Command promote sets a user's role to admin by email address.
// It is used to bootstrap the first admin user. The change goes through the
// regular workflow, so it is audited as performed by the system actor.
//
// Usage:
//
//	promote --email=user@example.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/campusdesk-backend/internal/app"
	"github.com/heartmarshall/campusdesk-backend/internal/config"
	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deps, cleanup, err := app.Build(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("build: %v", err)
	}
	defer cleanup()

	u, err := deps.Users.GetByEmail(ctx, *email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Printf("No user found with email %q.\n", *email)
			os.Exit(1)
		}
		log.Fatalf("find user: %v", err)
	}

	if _, err := deps.Admin.ChangeRole(ctx, u.ID, domain.UserRoleAdmin, domain.SystemActor); err != nil {
		if errors.Is(err, domain.ErrNoopTransition) {
			fmt.Printf("User %q is already admin.\n", *email)
			return
		}
		log.Fatalf("change role: %v", err)
	}

	fmt.Printf("User %q promoted to admin.\n", *email)
}
