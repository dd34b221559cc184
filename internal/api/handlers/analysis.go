package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/etfgrowth/analyzer/internal/api/request"
	"github.com/etfgrowth/analyzer/internal/apperrors"
	"github.com/etfgrowth/analyzer/internal/service"
	"github.com/etfgrowth/analyzer/internal/validation"
)

// AnalysisHandler handles HTTP requests for the analysis endpoint. It parses
// and validates the request, normalizes calendar dates to the market
// timezone, and delegates the computation to the analysis service.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
	location        *time.Location
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService *service.AnalysisService, location *time.Location) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		location:        location,
	}
}

// Analyze handles POST requests to run one analysis.
//
// Endpoint: POST /api/analysis
// Response: 200 OK with service.AnalysisResult
// Errors: 400 on validation failure, 404 when the ticker has no data,
// 422 on degenerate math, 500 otherwise. Optional-metric degradation is not
// an error; it surfaces in the result's warnings.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAnalyzeRequest(req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "validation failed",
				"fields": verr.Fields,
			})
			return
		}
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	// Dates are validated above; re-parse them as midnights in the market
	// timezone so boundary days resolve consistently.
	start, _ := time.ParseInLocation("2006-01-02", req.StartDate, h.location)
	end, _ := time.ParseInLocation("2006-01-02", req.EndDate, h.location)

	result, err := h.analysisService.Analyze(r.Context(), service.AnalysisRequest{
		Ticker:            strings.ToUpper(strings.TrimSpace(req.Ticker)),
		Benchmark:         strings.ToUpper(strings.TrimSpace(req.Benchmark)),
		Start:             start,
		End:               end,
		InitialInvestment: req.InitialInvestment,
	})
	if err != nil {
		respondAnalysisError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// respondAnalysisError maps engine errors onto HTTP statuses: missing data is
// 404, degenerate math is 422, anything unexpected is 500.
func respondAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoData):
		respondError(w, http.StatusNotFound, "no data for symbol", err.Error())
	case errors.Is(err, apperrors.ErrZeroVolatility),
		errors.Is(err, apperrors.ErrNotEnoughData),
		errors.Is(err, apperrors.ErrNonFiniteMetric):
		respondError(w, http.StatusUnprocessableEntity, "analysis not computable for this range", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "analysis failed", err.Error())
	}
}
