// Package main provides the server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	apiconnect "github.com/osa030/soundwave/internal/api/connect"
	playerv1 "github.com/osa030/soundwave/internal/api/playerv1"
	"github.com/osa030/soundwave/internal/app/catalog"
	"github.com/osa030/soundwave/internal/app/library"
	"github.com/osa030/soundwave/internal/app/session"
	"github.com/osa030/soundwave/internal/domain/track"
	"github.com/osa030/soundwave/internal/infra/config"
	"github.com/osa030/soundwave/internal/infra/logger"
	"github.com/osa030/soundwave/internal/infra/store"
)

const defaultConfigPath = "config/server.yaml"

var (
	app        = kingpin.New("soundwave-server", "SoundWave player server")
	configPath = app.Flag("config", "Path to config file").Default(defaultConfigPath).String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()

	// list-tracks command
	listTracksCmd = app.Command("list-tracks", "Print the configured catalog and exit")
)

func init() {
	app.Command("start", "Start the server (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	loggerConfig := logger.Config{
		Output: "stdout",
		Level:  "info",
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = "file"
		loggerConfig.File = *logfile
	}
	closer, err := logger.Init(loggerConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer closer.Close()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	if command == listTracksCmd.FullCommand() {
		if err := printTracks(cfg); err != nil {
			zlog.Fatal().Msgf("Failed to load catalog: %v", err)
		}
		return
	}

	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Server error: %+v", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file. A missing file at the default location
// falls back to the built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	zlog.Info().Msgf("Loading config from %s", path)
	if _, err := os.Stat(path); os.IsNotExist(err) && path == defaultConfigPath {
		zlog.Warn().Msgf("Config file not found, using defaults: path=%s", path)
		return config.Default()
	}
	return config.Load(path)
}

func newCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	chain, err := catalog.NewProviderChainFromConfig(cfg.Catalog)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog provider chain")
	}
	return catalog.New(ctx, chain, catalog.Config{RadioSize: cfg.Catalog.RadioSize})
}

// run executes the main server logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config) error {
	ctx := context.Background()

	cat, err := newCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	kv, err := store.NewFromConfig(ctx, cfg.Storage)
	if err != nil {
		return errors.Wrap(err, "failed to create store")
	}
	defer kv.Close()

	sessionMgr := session.NewManager(cfg, cat, library.New(kv))

	mux := http.NewServeMux()
	playerPath, playerHandler := playerv1.NewPlayerServiceHandler(
		apiconnect.NewPlayerService(sessionMgr),
		connect.WithInterceptors(apiconnect.NewLoggingInterceptor()),
	)
	mux.Handle(playerPath, playerHandler)

	serverAddr := cfg.Server.Addr
	// Create server with h2c (HTTP/2 cleartext) support
	server := &http.Server{
		Addr:    serverAddr,
		Handler: h2c.NewHandler(mux, &http2.Server{}),
	}

	serverErrCh := make(chan error, 1)
	serverStartedCh := make(chan struct{})

	sessionMgr.Start()

	go func() {
		zlog.Info().Msgf("Starting server: addr=%s", serverAddr)
		close(serverStartedCh)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	<-serverStartedCh
	// Give the server a moment to fully initialize
	time.Sleep(100 * time.Millisecond)

	executeHooks(cfg.Server.Hooks.OnStarted, "on_started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case err := <-serverErrCh:
		sessionMgr.Close()
		return errors.Wrap(err, "server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close session manager first to terminate active notification streams
	sessionMgr.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}

	zlog.Info().Msg("Server stopped")

	executeHooks(cfg.Server.Hooks.OnStopped, "on_stopped")

	return nil
}

// printTracks prints the catalog built from the configured sources.
func printTracks(cfg *config.Config) error {
	cat, err := newCatalog(context.Background(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Catalog (%d tracks):\n", cat.Len())
	for _, t := range cat.All() {
		fmt.Printf("  %-4s %-28s %-20s %s\n", t.ID, t.Title, t.Artist, track.FormatSeconds(t.Duration))
	}
	return nil
}

// executeHooks runs a list of shell commands.
func executeHooks(hooks []string, stage string) {
	if len(hooks) == 0 {
		return
	}

	zlog.Info().Msgf("Executing %s hooks (%d commands)", stage, len(hooks))

	for _, hook := range hooks {
		zlog.Info().Msgf("Executing hook: %s", hook)
		// Use sh -c to allow shell features like redirection or pipes
		cmd := exec.Command("sh", "-c", hook)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			zlog.Error().Err(err).Msgf("Failed to execute hook: %s", hook)
		}
	}
}
