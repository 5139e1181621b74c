// Command cache-invalidate drops cached curriculum snapshots after the content
// service edits a course, optionally reloading them from PostgreSQL. It is
// intended to be invoked by the publishing pipeline, not by the server.
//
// Usage:
//
//	cache-invalidate [--warm] <course-id>...
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres/curriculum"
	"github.com/heartmarshall/coursetrack-backend/internal/adapter/redis"
	"github.com/heartmarshall/coursetrack-backend/internal/app"
	"github.com/heartmarshall/coursetrack-backend/internal/config"
)

func main() {
	warm := flag.Bool("warm", false, "reload the invalidated snapshots into the cache")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: cache-invalidate [--warm] <course-id>...")
		os.Exit(1)
	}

	courseIDs := make([]uuid.UUID, 0, flag.NArg())
	for _, arg := range flag.Args() {
		id, err := uuid.Parse(arg)
		if err != nil {
			log.Fatalf("invalid course id %q: %v", arg, err)
		}
		courseIDs = append(courseIDs, id)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)

	if !cfg.Redis.Enabled() {
		logger.Info("redis is not configured, nothing to invalidate")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	client, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Close() //nolint:errcheck

	cache := redis.NewCurriculumCache(client, curriculum.New(pool), cfg.Redis.CurriculumTTL, logger)

	if err := cache.Invalidate(ctx, courseIDs...); err != nil {
		logger.Error("invalidate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	warmed := 0
	if *warm {
		curricula, err := cache.GetCourses(ctx, courseIDs)
		if err != nil {
			logger.Error("warm failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		warmed = len(curricula)
	}

	logger.Info("curriculum cache invalidated",
		slog.Int("courses", len(courseIDs)),
		slog.Int("warmed", warmed),
	)
}
