package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/de-tools/sales-analyzer/pkg/models/domain"
	"github.com/de-tools/sales-analyzer/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-analyzer/pkg/services/analysis"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// AnalyzerFactory returns the analyzer for one invocation. strict is true when the
// command line asked for strict parsing.
type AnalyzerFactory func(strict bool) analysis.Analyzer

type AnalyzeCmd struct {
	investments     []string
	revenues        []string
	investmentsFile string
	revenuesFile    string
	format          string
	strict          bool
	accumulate      bool
	analyzers       AnalyzerFactory
}

func NewAnalyzeCmd(analyzers AnalyzerFactory) *cobra.Command {
	ac := &AnalyzeCmd{analyzers: analyzers}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze investments against revenues and forecast future revenue",
		Example: `  sales-analyzer analyze --investments "100,100,100" --revenues "150,150,150,150,150"
  sales-analyzer analyze --investments-file inv.txt --revenues-file rev.txt --format json
  sales-analyzer analyze --investments 100 --revenues 150 --investments 50 --revenues 90 --accumulate`,
		RunE: ac.run,
	}

	cmd.Flags().StringArrayVar(&ac.investments, "investments", nil,
		"Investments separated by commas or newlines (repeat to submit several runs)")
	cmd.Flags().StringArrayVar(&ac.revenues, "revenues", nil,
		"Revenues separated by commas or newlines (repeat to submit several runs)")
	cmd.Flags().StringVar(&ac.investmentsFile, "investments-file", "", "Read one more investments submission from a file")
	cmd.Flags().StringVar(&ac.revenuesFile, "revenues-file", "", "Read one more revenues submission from a file")
	cmd.Flags().StringVarP(&ac.format, "format", "f", string(export.FormatTable), "Output format: table, text, json or yaml")
	cmd.Flags().BoolVar(&ac.strict, "strict", false, "Reject the submission on the first value that is not a number")
	cmd.Flags().BoolVar(&ac.accumulate, "accumulate", false, "Add every submission onto the totals of the previous ones")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	format, err := export.ParseFormat(ac.format)
	if err != nil {
		return err
	}

	investments, err := withFile(ac.investments, ac.investmentsFile)
	if err != nil {
		return err
	}
	revenues, err := withFile(ac.revenues, ac.revenuesFile)
	if err != nil {
		return err
	}

	if len(investments) == 0 || len(revenues) == 0 {
		return analysis.ErrMissingInput
	}
	if len(investments) != len(revenues) {
		return fmt.Errorf("got %d investments submissions and %d revenues submissions, each run needs both",
			len(investments), len(revenues))
	}

	analyzer := ac.analyzers(ac.strict)
	reporter := export.NewReporter(cmd.OutOrStdout(), format)

	var previous *domain.Metrics
	for i := range investments {
		result, err := analyzer.Run(ctx, analysis.Request{
			Investments: investments[i],
			Revenues:    revenues[i],
			Previous:    previous,
		})
		if err != nil {
			if len(investments) > 1 {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
			return err
		}

		if ac.accumulate {
			previous = &result.Metrics
		}

		logger.Debug().Int("run", i+1).Str("mode", string(result.Mode)).Msg("rendering analysis")
		if err := reporter.Handle(result); err != nil {
			return fmt.Errorf("failed to render analysis: %w", err)
		}
	}
	return nil
}

func withFile(values []string, path string) ([]string, error) {
	if path == "" {
		return values, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("input file %s does not exist", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	// a trailing newline ends the file, it is not an empty sample
	return append(values, strings.TrimSpace(string(data))), nil
}
