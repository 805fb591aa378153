package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/apickard/discbin/internal/logger"
	"github.com/apickard/discbin/internal/telemetry"
	"github.com/apickard/discbin/pkg/config"
	"github.com/apickard/discbin/pkg/lostfound/api"
	"github.com/apickard/discbin/pkg/lostfound/store"
	"github.com/apickard/discbin/pkg/metrics"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the discbin server",
	Long: `Start the discbin server with the specified configuration.

The server runs in the foreground. Use a process supervisor (systemd, runit)
to run it as a service.

Use --config to specify a custom configuration file, or it will use the
default location at $XDG_CONFIG_HOME/discbin/config.yaml.

Examples:
  # Start with default config location
  discbin start

  # Start with custom config file
  discbin start --config /etc/discbin/config.yaml

  # Start with environment variable overrides
  DISCBIN_LOGGING_LEVEL=DEBUG discbin start`,
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	// Initialize the structured logger
	if err := InitLogger(cfg); err != nil {
		return err
	}

	// Create cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry (if enabled)
	telemetryCfg := cfg.Telemetry
	telemetryCfg.ServiceName = "discbin"
	telemetryCfg.ServiceVersion = Version
	telemetryShutdown, err := telemetry.Init(ctx, telemetryCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryShutdown(ctx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}()

	logger.Info("Log level", "level", cfg.Logging.Level, "format", cfg.Logging.Format)
	logger.Info("Configuration loaded", "source", getConfigSource(GetConfigFile()))
	if telemetry.IsEnabled() {
		logger.Info("Telemetry enabled", "endpoint", cfg.Telemetry.Endpoint, "sample_rate", cfg.Telemetry.SampleRate)
	} else {
		logger.Info("Telemetry disabled")
	}

	// Open the found-disc database. Schema migration runs here, before the
	// API starts accepting requests.
	discStore, err := store.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() { _ = discStore.Close() }()
	logger.Info("Database ready", "type", cfg.Database.Type)

	// Start metrics server (if enabled)
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewServer(cfg.Metrics)
		metricsServer.SetShutdownTimeout(cfg.ShutdownTimeout)
		m = metricsServer.Metrics()
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				logger.Error("Metrics server error", "error", err)
			}
		}()
		logger.Info("Metrics enabled", "port", cfg.Metrics.Port)
	} else {
		logger.Info("Metrics collection disabled")
	}

	apiServer := api.NewServer(cfg.API, discStore, m)
	apiServer.SetShutdownTimeout(cfg.ShutdownTimeout)
	logger.Info("API server configured", "port", cfg.API.Port, "instance_id", apiServer.InstanceID())

	// Start API server in background
	serverDone := make(chan error, 1)
	go func() {
		serverDone <- apiServer.Start(ctx)
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Server is running. Press Ctrl+C to stop.")

	select {
	case <-sigChan:
		signal.Stop(sigChan)
		logger.Info("Shutdown signal received, initiating graceful shutdown")
		cancel()

		// Wait for server to shut down gracefully
		if err := <-serverDone; err != nil {
			logger.Error("Server shutdown error", "error", err)
			return err
		}
		logger.Info("Server stopped gracefully")

	case err := <-serverDone:
		signal.Stop(sigChan)
		if err != nil {
			logger.Error("Server error", "error", err)
			return err
		}
	}

	return nil
}
