package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/sales-analyzer/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-analyzer/pkg/services/analysis"
	"github.com/de-tools/sales-analyzer/pkg/services/config"
	"github.com/de-tools/sales-analyzer/pkg/telemetry"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	analyzer analysis.Analyzer
	errOut   io.Writer
	rootCmd  *cobra.Command

	configPath string
	logLevel   string
	cfg        *config.Config
	shutdown   telemetry.ShutdownFunc
}

// Options contain configuration for the CLI
type Options struct {
	// Analyzer replaces the analysis service built from the configuration.
	Analyzer  analysis.Analyzer
	Output    io.Writer
	ErrOutput io.Writer
	Version   string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Version == "" {
		opts.Version = telemetry.ServiceVersion
	}

	cli := &CLI{
		analyzer: opts.Analyzer,
		errOut:   opts.ErrOutput,
	}

	cli.rootCmd = cli.newRootCmd(opts.Version)
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOutput)
	return cli
}

func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	defer func() {
		if cli.shutdown != nil {
			_ = cli.shutdown(context.Background())
		}
	}()
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "sales-analyzer",
		Short:             "Sales profitability analysis and revenue forecasting",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to a configuration file")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Override the configured log level")

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.analyzerFor))
	cmd.AddCommand(commands.NewVersionCmd(version))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cli.configPath)
	if err != nil {
		return err
	}
	if cli.logLevel != "" {
		cfg.Log.Level = cli.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	cli.cfg = cfg

	logger := cfg.Log.NewLogger(cli.errOut)
	ctx := logger.WithContext(cmd.Context())

	shutdown, err := telemetry.Init(ctx, telemetry.Settings{
		Enabled: cfg.Tracing.Enabled,
		Output:  cli.errOut,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	cli.shutdown = shutdown

	cmd.SetContext(ctx)
	return nil
}

func (cli *CLI) analyzerFor(strict bool) analysis.Analyzer {
	if cli.analyzer != nil {
		return cli.analyzer
	}
	return analysis.NewService(analysis.Options{
		Strict:     strict || cli.cfg.Parser.Strict,
		Horizon:    cli.cfg.Forecast.Horizon,
		MinSamples: cli.cfg.Forecast.MinSamples,
	})
}
