// Package main is the entry point for the pokelookup command
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokelookup/internal/config"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/orchestrators/lookup"
)

var (
	// Global flags
	configPath   string
	cacheDir     string
	cacheBackend string
	redisAddr    string
	noCache      bool
	language     string
	fast         bool
	verbose      bool

	// cfg is loaded once every flag has been parsed
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   lookup.AppName,
	Short: "Look up pokemon details using PokeAPI",
	Long: `pokelookup looks up pokemon details using PokeAPI. Some pokemon need to be
named with their form when the form is distinct enough (e.g. pumpkaboo-small
or toxtricity-amped). The forms of a species are listed by the 'list' command.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		report(os.Stderr, err)
		os.Exit(errors.ExitStatus(err))
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default: "+config.DefaultPath()+")")
	flags.StringVar(&cacheDir, "cache-dir", "", "cache directory for API calls (default: "+config.DefaultCacheDir()+")")
	flags.StringVar(&cacheBackend, "cache-backend", "", "response cache backend: sqlite, redis or none")
	flags.StringVar(&redisAddr, "redis-addr", "", "redis address for the redis cache backend")
	flags.BoolVar(&noCache, "no-cache", false, "fetch every response from PokeAPI")
	flags.StringVarP(&language, "lang", "L", "", "language ID for formatted names (default: en)")
	flags.BoolVarP(&fast, "fast", "f", false, "skip API requests for formatted names")
	flags.BoolVar(&verbose, "verbose", false, "log debug output to stderr")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, err.Error())
	})

	rootCmd.AddCommand(
		varietiesCmd,
		typesCmd,
		abilitiesCmd,
		movesCmd,
		eggsCmd,
		gendersCmd,
		encountersCmd,
		evolutionsCmd,
		matchupsCmd,
		serverCmd,
		clientCmd,
	)
}

// setup installs the logger and loads the config with flag overrides applied
func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("cache-dir") {
		loaded.Cache.Dir = cacheDir
	}
	if changed("cache-backend") {
		loaded.Cache.Backend = cacheBackend
	}
	if changed("redis-addr") {
		loaded.Cache.RedisAddr = redisAddr
	}
	if noCache {
		loaded.Cache.Backend = config.BackendNone
	}
	if changed("lang") {
		loaded.Language = language
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	slog.Debug("config loaded",
		"language", cfg.Language,
		"cache_backend", cfg.Cache.Backend,
		"base_url", cfg.API.BaseURL)
	return nil
}

// report prints err the way the user should see it: the message, then the
// remediation tip and the closest spelling when there are any
func report(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", errors.GetMessage(err))

	tip := errors.GetMetaString(err, errors.MetaTip)
	suggestion := errors.GetMetaString(err, errors.MetaSuggestion)
	if tip == "" && suggestion == "" {
		return
	}

	fmt.Fprintln(w)
	if tip != "" {
		fmt.Fprintf(w, "  tip: %s\n", tip)
	}
	if suggestion != "" {
		fmt.Fprintf(w, "  did you mean '%s'?\n", suggestion)
	}
}

// printLines writes one line per entry, or a notice when there are none
func printLines(w io.Writer, lines []string) {
	if len(lines) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
