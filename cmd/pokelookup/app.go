package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokelookup/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/config"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/orchestrators/lookup"
	"github.com/KirkDiggler/pokelookup/internal/pkg/clock"
	"github.com/KirkDiggler/pokelookup/internal/pkg/suggest"
	redisclient "github.com/KirkDiggler/pokelookup/internal/redis"
	"github.com/KirkDiggler/pokelookup/internal/repositories/responsecache"
)

// newService wires the lookup orchestrator from cfg. The returned cleanup
// closes the response cache.
func newService(ctx context.Context, cfg *config.Config) (lookup.Service, func(), error) {
	cache := openCache(ctx, cfg.Cache)

	cleanup := func() {
		if cache == nil {
			return
		}
		if err := cache.Close(); err != nil {
			slog.Debug("failed to close response cache", "error", err)
		}
	}

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.API.BaseURL,
		HTTPTimeout: cfg.API.Timeout,
		Cache:       cache,
	})
	if err != nil {
		cleanup()
		return nil, nil, errors.Wrap(err, "failed to create pokeapi client")
	}

	service, err := lookup.NewOrchestrator(&lookup.Config{
		Client:      client,
		Matcher:     suggest.New(),
		Concurrency: cfg.API.Concurrency,
		ColumnWidth: cfg.Render.ColumnWidth,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return service, cleanup, nil
}

// openCache opens the configured cache backend. A backend that cannot be
// opened is reported and the lookup carries on uncached.
func openCache(ctx context.Context, c config.CacheConfig) responsecache.Repository {
	var (
		cache responsecache.Repository
		err   error
	)

	switch c.Backend {
	case config.BackendNone:
		return nil
	case config.BackendRedis:
		cache, err = openRedis(ctx, c)
	default:
		cache, err = responsecache.NewSQLite(&responsecache.SQLiteConfig{
			Dir:   c.Dir,
			TTL:   c.TTL,
			Clock: clock.New(),
		})
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open %s cache, continuing without it\n", c.Backend)
		slog.Debug("response cache unavailable", "backend", c.Backend, "error", err)
		return nil
	}
	return cache
}

func openRedis(ctx context.Context, c config.CacheConfig) (responsecache.Repository, error) {
	client, err := redisclient.NewClient(c.RedisAddr, nil)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	cache, err := responsecache.NewRedis(&responsecache.RedisConfig{
		Client: client,
		TTL:    c.TTL,
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return cache, nil
}

// lookupFunc runs one lookup against the service
type lookupFunc func(ctx context.Context, service lookup.Service, opts lookup.Options) (*lookup.Output, error)

// runLookup builds the service, runs call and prints its lines
func runLookup(cmd *cobra.Command, call lookupFunc) error {
	ctx := cmd.Context()

	service, cleanup, err := newService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := call(ctx, service, lookup.Options{
		Language: cfg.Language,
		Fast:     fast,
	})
	if err != nil {
		return err
	}

	printLines(cmd.OutOrStdout(), out.Lines)
	return nil
}
