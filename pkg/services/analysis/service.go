package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/de-tools/sales-analyzer/pkg/models/domain"
	"github.com/de-tools/sales-analyzer/pkg/services/analytics"
	"github.com/de-tools/sales-analyzer/pkg/services/parser"
	"github.com/de-tools/sales-analyzer/pkg/telemetry"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrMissingInput = errors.New("Both investments and revenues fields are required.")

// Request carries one submission of the two raw inputs.
type Request struct {
	Investments string
	Revenues    string
	// Previous switches the run to accumulation mode: the new totals are added to it.
	Previous *domain.Metrics
}

// Analyzer runs an analysis for a single submission
type Analyzer interface {
	Run(ctx context.Context, req Request) (*domain.Analysis, error)
}

type Options struct {
	Strict     bool
	Horizon    int
	MinSamples int
}

type Service struct {
	engine *analytics.Engine
	strict bool
}

func NewService(opts Options) *Service {
	return &Service{
		engine: analytics.NewEngine(analytics.Options{
			Horizon:    opts.Horizon,
			MinSamples: opts.MinSamples,
		}),
		strict: opts.Strict,
	}
}

// IsInputError reports whether err was caused by the submitted data rather than the service.
func IsInputError(err error) bool {
	var tokenErr *parser.TokenError
	return errors.Is(err, ErrMissingInput) || errors.As(err, &tokenErr)
}

func (s *Service) Run(ctx context.Context, req Request) (*domain.Analysis, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "analysis.run")
	defer span.End()
	logger := zerolog.Ctx(ctx)

	if strings.TrimSpace(req.Investments) == "" || strings.TrimSpace(req.Revenues) == "" {
		span.SetStatus(codes.Error, ErrMissingInput.Error())
		return nil, ErrMissingInput
	}

	investments, err := s.parse(req.Investments)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid investments")
		return nil, fmt.Errorf("investments: %w", err)
	}
	revenues, err := s.parse(req.Revenues)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid revenues")
		return nil, fmt.Errorf("revenues: %w", err)
	}

	result := &domain.Analysis{
		Mode:              domain.RunModePerRun,
		InvestmentSamples: investments.Len(),
		RevenueSamples:    revenues.Len(),
		InvalidTokens:     len(investments.Invalid) + len(revenues.Invalid),
	}
	if req.Previous != nil {
		result.Mode = domain.RunModeAccumulated
		result.Metrics, result.Forecast = s.engine.Accumulate(req.Previous, investments, revenues)
	} else {
		result.Metrics, result.Forecast = s.engine.Analyze(investments, revenues)
	}

	span.SetAttributes(
		attribute.String("analysis.mode", string(result.Mode)),
		attribute.Int("analysis.investment_samples", result.InvestmentSamples),
		attribute.Int("analysis.revenue_samples", result.RevenueSamples),
		attribute.String("analysis.forecast_status", string(result.Forecast.Status)),
	)

	if result.InvalidTokens > 0 {
		logger.Warn().
			Ints("investment_positions", investments.Invalid).
			Ints("revenue_positions", revenues.Invalid).
			Msg("input contains values that are not numbers")
	}
	switch result.Metrics.ROI.Status {
	case domain.MeasureUndefined:
		logger.Warn().Msg("total investment is zero, roi and ratio are undefined")
	case domain.MeasureOverflow:
		logger.Warn().Msg("totals exceed the representable range")
	}

	logger.Debug().
		Str("mode", string(result.Mode)).
		Int("investment_samples", result.InvestmentSamples).
		Int("revenue_samples", result.RevenueSamples).
		Str("forecast", string(result.Forecast.Status)).
		Msg("analysis completed")

	return result, nil
}

func (s *Service) parse(raw string) (domain.SampleSequence, error) {
	if s.strict {
		return parser.ParseStrict(raw)
	}
	return parser.Parse(raw), nil
}
