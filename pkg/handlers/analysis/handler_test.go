package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/de-tools/sales-analyzer/pkg/models/api"
	"github.com/de-tools/sales-analyzer/pkg/models/domain"
	"github.com/de-tools/sales-analyzer/pkg/services/analysis"
	"github.com/de-tools/sales-analyzer/pkg/services/analytics"
	"github.com/de-tools/sales-analyzer/pkg/services/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) Run(ctx context.Context, req analysis.Request) (*domain.Analysis, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analysis), args.Error(1)
}

func flatRevenueAnalysis() *domain.Analysis {
	m, f := analytics.Analyze(parser.Parse("100,100,100"), parser.Parse("150,150,150,150,150"))
	return &domain.Analysis{
		Mode:              domain.RunModePerRun,
		InvestmentSamples: 3,
		RevenueSamples:    5,
		Metrics:           m,
		Forecast:          f,
	}
}

func TestCreateAnalysis(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockAnalyzer)
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name: "successful per-run analysis",
			body: `{"investments":"100,100,100","revenues":"150,150,150,150,150"}`,
			setupMock: func(m *mockAnalyzer) {
				m.On("Run", mock.Anything, analysis.Request{
					Investments: "100,100,100",
					Revenues:    "150,150,150,150,150",
				}).Return(flatRevenueAnalysis(), nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp api.AnalysisResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "300.00", resp.Report.TotalInvestment)
				assert.Equal(t, "60.00%", resp.Report.ProfitMargin)
				assert.Equal(t, "PROFITABLE", resp.Report.ProfitabilityIndex)
				assert.Len(t, resp.Forecast.Values, 20)
				assert.Equal(t, &api.Totals{TotalInvestment: 300, TotalRevenue: 750}, resp.Totals)
			},
		},
		{
			name: "previous totals select accumulation",
			body: `{"investments":"1","revenues":"2","previous":{"total_investment":10,"total_revenue":20}}`,
			setupMock: func(m *mockAnalyzer) {
				m.On("Run", mock.Anything, mock.MatchedBy(func(req analysis.Request) bool {
					return req.Previous != nil &&
						req.Previous.TotalInvestment.Value == 10 &&
						req.Previous.TotalRevenue.Value == 20
				})).Return(flatRevenueAnalysis(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing fields",
			body: `{"investments":"  "}`,
			setupMock: func(m *mockAnalyzer) {
				m.On("Run", mock.Anything, mock.Anything).Return(nil, analysis.ErrMissingInput)
			},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Both investments and revenues fields are required."}`, string(body))
			},
		},
		{
			name:           "malformed json",
			body:           `{"investments":`,
			setupMock:      func(m *mockAnalyzer) {},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"invalid request body"}`, string(body))
			},
		},
		{
			name: "unexpected failure",
			body: `{"investments":"1","revenues":"2"}`,
			setupMock: func(m *mockAnalyzer) {
				m.On("Run", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"analysis failed"}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := new(mockAnalyzer)
			tt.setupMock(analyzer)
			handler := NewHandler(analyzer)

			req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.CreateAnalysis(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.check != nil {
				tt.check(t, rec.Body.Bytes())
			}
			analyzer.AssertExpectations(t)
		})
	}
}

func TestCreateAnalysis_WithRealService(t *testing.T) {
	handler := NewHandler(analysis.NewService(analysis.Options{Strict: true}))

	req := httptest.NewRequest(http.MethodPost, "/analyses",
		strings.NewReader(`{"investments":"100","revenues":"100,abc,100,100,100"}`))
	rec := httptest.NewRecorder()

	handler.CreateAnalysis(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"revenues: invalid number \"abc\" at position 2"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(new(mockAnalyzer)).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
