// Command migrate applies the embedded goose migrations.
//
// Usage:
//
//	migrate [up|down|status|version]
//
// Requires DATABASE_DSN environment variable to be set. The default command is up.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/campusdesk-backend/migrations"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	if err := run(ctx, provider, command); err != nil {
		log.Fatalf("migrate %s: %v", command, err)
	}
}

func run(ctx context.Context, p *goose.Provider, command string) error {
	switch command {
	case "up":
		results, err := p.Up(ctx)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No pending migrations.")
		}
		for _, r := range results {
			fmt.Printf("OK   %s (%s)\n", r.Source.Path, r.Duration.Round(time.Millisecond))
		}
	case "down":
		r, err := p.Down(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("OK   %s rolled back\n", r.Source.Path)
	case "status":
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-40s %s\n", s.Source.Path, applied)
		}
	case "version":
		v, err := p.GetDBVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Current version: %d\n", v)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
