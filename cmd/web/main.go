package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/de-tools/sales-analyzer/pkg/server"
	"github.com/de-tools/sales-analyzer/pkg/services/analysis"
	"github.com/de-tools/sales-analyzer/pkg/services/config"
	"github.com/de-tools/sales-analyzer/pkg/telemetry"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:          "web",
		Short:        "Start the web server for Sales Analyzer",
		SilenceUsage: true,
		RunE:         runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a configuration file (SALES_ANALYZER_* variables and .env are read as well)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	ctx := logger.WithContext(cmd.Context())

	shutdownTracing, err := telemetry.Init(ctx, telemetry.Settings{Enabled: cfg.Tracing.Enabled})
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to flush traces")
		}
	}()

	if cfgPath != "" {
		logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	}
	logger.Info().
		Bool("strict", cfg.Parser.Strict).
		Int("forecast_horizon", cfg.Forecast.Horizon).
		Int("forecast_min_samples", cfg.Forecast.MinSamples).
		Bool("tracing", cfg.Tracing.Enabled).
		Msg("analysis settings")

	analyzer := analysis.NewService(analysis.Options{
		Strict:     cfg.Parser.Strict,
		Horizon:    cfg.Forecast.Horizon,
		MinSamples: cfg.Forecast.MinSamples,
	})

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Analyzer: analyzer,
			Logger:   logger,
		},
	})

	return api.Start()
}
