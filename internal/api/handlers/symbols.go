package handlers

import (
	"net/http"

	"github.com/etfgrowth/analyzer/internal/service"
)

// SymbolsHandler serves the preset ETF list for the UI dropdown.
type SymbolsHandler struct{}

// NewSymbolsHandler creates a new SymbolsHandler.
func NewSymbolsHandler() *SymbolsHandler {
	return &SymbolsHandler{}
}

// Symbols handles GET requests for the preset high-volume ETF tickers.
//
// Endpoint: GET /api/symbols
// Response: 200 OK with {"symbols": [...]}
func (h *SymbolsHandler) Symbols(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{
		"symbols": service.PresetSymbols(),
	})
}
