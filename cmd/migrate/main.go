// Command migrate manages the ledger schema.
//
// Usage:
//
//	migrate [--dir=migrations] up|down|status
//
// DATABASE_DSN must point at the target database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with goose SQL migrations")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Fprintln(os.Stderr, "Usage: migrate [--dir=migrations] up|down|status")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	m, err := postgres.NewMigrator(dsn, *dir)
	if err != nil {
		log.Fatalf("migrator: %v", err)
	}
	defer m.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch command {
	case "up":
		results, err := m.Up(ctx)
		if err != nil {
			log.Fatalf("goose up: %v", err)
		}
		if len(results) == 0 {
			fmt.Println("schema is up to date")
		}
		for _, r := range results {
			fmt.Printf("applied %s (%s)\n", r.Source.Path, r.Duration)
		}
	case "down":
		result, err := m.Down(ctx)
		if err != nil {
			log.Fatalf("goose down: %v", err)
		}
		fmt.Printf("rolled back %s\n", result.Source.Path)
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			log.Fatalf("goose status: %v", err)
		}
		for _, s := range statuses {
			fmt.Printf("%-40s %s\n", s.Source.Path, s.State)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		os.Exit(1)
	}
}
