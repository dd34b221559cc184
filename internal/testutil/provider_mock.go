package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/etfgrowth/analyzer/internal/model"
)

// MockMarketData is a mock implementation of service.MarketDataProvider for
// testing. It returns predefined per-symbol data instead of making API calls
// and is safe for the engine's concurrent fetches.
type MockMarketData struct {
	mu sync.Mutex

	// Prices maps symbol to the series returned by PriceHistory.
	Prices map[string]model.PriceSeries
	// PriceErrs maps symbol to an error returned by PriceHistory.
	PriceErrs map[string]error
	// Dividends maps symbol to the events returned by DividendHistory.
	Dividends map[string][]model.DividendEvent
	// DividendErr, when set, is returned by every DividendHistory call.
	DividendErr error

	// PriceCalls and DividendCalls record the symbols queried, in call order.
	PriceCalls    []string
	DividendCalls []string
}

// NewMockMarketData creates an empty mock; configure it with the With helpers.
func NewMockMarketData() *MockMarketData {
	return &MockMarketData{
		Prices:    make(map[string]model.PriceSeries),
		PriceErrs: make(map[string]error),
		Dividends: make(map[string][]model.DividendEvent),
	}
}

// WithSeries configures the price series returned for a symbol.
func (m *MockMarketData) WithSeries(symbol string, series model.PriceSeries) *MockMarketData {
	m.Prices[symbol] = series
	return m
}

// WithPriceError configures PriceHistory to fail for a symbol.
func (m *MockMarketData) WithPriceError(symbol string, err error) *MockMarketData {
	m.PriceErrs[symbol] = err
	return m
}

// WithDividends configures the dividend events returned for a symbol.
func (m *MockMarketData) WithDividends(symbol string, events []model.DividendEvent) *MockMarketData {
	m.Dividends[symbol] = events
	return m
}

// WithDividendError configures DividendHistory to fail for every symbol.
func (m *MockMarketData) WithDividendError(err error) *MockMarketData {
	m.DividendErr = err
	return m
}

// PriceHistory returns the configured series or error for the symbol. An
// unconfigured symbol yields an empty series, mirroring the real client's
// behavior for unknown tickers.
func (m *MockMarketData) PriceHistory(_ context.Context, symbol string, _, _ time.Time) (model.PriceSeries, error) {
	m.mu.Lock()
	m.PriceCalls = append(m.PriceCalls, symbol)
	m.mu.Unlock()

	if err, ok := m.PriceErrs[symbol]; ok {
		return model.PriceSeries{}, err
	}
	return m.Prices[symbol], nil
}

// DividendHistory returns the configured dividend events for the symbol.
func (m *MockMarketData) DividendHistory(_ context.Context, symbol string, _, _ time.Time) ([]model.DividendEvent, error) {
	m.mu.Lock()
	m.DividendCalls = append(m.DividendCalls, symbol)
	m.mu.Unlock()

	if m.DividendErr != nil {
		return nil, m.DividendErr
	}
	return m.Dividends[symbol], nil
}
