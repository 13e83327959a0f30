package analysis

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/de-tools/sales-analyzer/pkg/adapters"
	"github.com/de-tools/sales-analyzer/pkg/models/api"
	"github.com/de-tools/sales-analyzer/pkg/services/analysis"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	analyzer analysis.Analyzer
}

func NewHandler(analyzer analysis.Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

func (h *Handler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.AnalysisRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil && err != io.EOF {
		logger.Warn().Err(err).Msg("failed to decode analysis request")
		writeJSON(w, r, http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.analyzer.Run(ctx, analysis.Request{
		Investments: req.Investments,
		Revenues:    req.Revenues,
		Previous:    adapters.MapTotalsToDomain(req.Previous),
	})
	if err != nil {
		if analysis.IsInputError(err) {
			writeJSON(w, r, http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error().Err(err).Msg("analysis failed")
		writeJSON(w, r, http.StatusInternalServerError, api.ErrorResponse{Error: "analysis failed"})
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapAnalysisToAPI(result))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Int("status", status).
			Msg("failed to encode response")
	}
}
