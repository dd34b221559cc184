package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/etfgrowth/analyzer/internal/apperrors"
	"github.com/etfgrowth/analyzer/internal/config"
	"github.com/etfgrowth/analyzer/internal/model"
)

// hoursPerYear converts an elapsed duration to years, counting leap days.
const hoursPerYear = 24 * 365.25

// MarketDataProvider supplies daily adjusted-close price history and dividend
// payment history for a symbol over an inclusive date range.
type MarketDataProvider interface {
	PriceHistory(ctx context.Context, symbol string, start, end time.Time) (model.PriceSeries, error)
	DividendHistory(ctx context.Context, symbol string, start, end time.Time) ([]model.DividendEvent, error)
}

// AnalysisRequest carries the validated inputs of one analysis run. Start and
// End are midnights in the engine's market timezone; End is inclusive.
type AnalysisRequest struct {
	Ticker            string
	Benchmark         string // empty means the configured default
	Start             time.Time
	End               time.Time
	InitialInvestment float64
}

// AnalysisResult is the complete output of one analysis run: the summary
// statistics, the per-year value table, and the dated investment-value series
// for charting. Warnings report optional metrics that could not be computed.
type AnalysisResult struct {
	ID                string                 `json:"id"`
	Ticker            string                 `json:"ticker"`
	Benchmark         string                 `json:"benchmark"`
	Start             time.Time              `json:"startDate"`
	End               time.Time              `json:"endDate"`
	InitialInvestment float64                `json:"initialInvestment"`
	Metrics           model.SummaryMetrics   `json:"metrics"`
	AnnualTable       []model.AnnualSnapshot `json:"annualTable"`
	Series            []model.ValuePoint     `json:"series"`
	Warnings          []string               `json:"warnings,omitempty"`
}

// AnalysisService is the metrics engine. Given a ticker and date range it
// fetches the price, benchmark, and dividend history and derives the growth
// curve, the year-end table, and the summary statistics. Each run is a pure
// recomputation over immutable inputs; nothing persists across runs.
type AnalysisService struct {
	provider MarketDataProvider
	cfg      config.AnalysisConfig
	location *time.Location
	log      zerolog.Logger
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(provider MarketDataProvider, cfg config.AnalysisConfig, location *time.Location, log zerolog.Logger) *AnalysisService {
	return &AnalysisService{
		provider: provider,
		cfg:      cfg,
		location: location,
		log:      log,
	}
}

// Analyze runs one analysis end to end.
//
// The three provider reads (ticker prices, benchmark prices, dividends) are
// independent and issued concurrently. A failed or empty ticker fetch is
// fatal and reported as ErrNoData naming the symbol. Benchmark and dividend
// failures only degrade the affected optional metric to "not applicable",
// recorded in the result's Warnings.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	benchmark := req.Benchmark
	if benchmark == "" {
		benchmark = s.cfg.BenchmarkSymbol
	}

	// Normalize the range boundaries to the engine's canonical market
	// timezone; boundary-day inclusion depends on it.
	req.Start = req.Start.In(s.location)
	req.End = req.End.In(s.location)

	var (
		prices       model.PriceSeries
		benchPrices  model.PriceSeries
		benchErr     error
		dividends    []model.DividendEvent
		dividendsErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prices, err = s.provider.PriceHistory(gctx, req.Ticker, req.Start, req.End)
		return err
	})
	g.Go(func() error {
		benchPrices, benchErr = s.provider.PriceHistory(gctx, benchmark, req.Start, req.End)
		return nil
	})
	g.Go(func() error {
		dividends, dividendsErr = s.provider.DividendHistory(gctx, req.Ticker, req.Start, req.End)
		return nil
	})

	if err := g.Wait(); err != nil {
		// A transport failure is indistinguishable from an unknown ticker
		// from the user's point of view; both surface as no data.
		s.log.Warn().Err(err).Str("ticker", req.Ticker).Msg("price history fetch failed")
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNoData, req.Ticker)
	}

	prices = filterRange(prices, req.Start, req.End)
	if prices.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNoData, req.Ticker)
	}

	returns := dailyReturns(prices.Prices())
	cumulative := cumulativeReturns(returns)
	values := investmentValues(prices.Points, cumulative, req.InitialInvestment)

	totalReturn := cumulative[len(cumulative)-1] - 1
	years := req.End.Sub(req.Start).Hours() / hoursPerYear

	cagr, err := compoundAnnualGrowthRate(totalReturn, years)
	if err != nil {
		return nil, err
	}

	dailyVol, err := dailyVolatility(returns)
	if err != nil {
		return nil, err
	}

	sharpe, err := sharpeRatio(returns, s.cfg.RiskFreeRate, dailyVol)
	if err != nil {
		return nil, err
	}

	result := &AnalysisResult{
		ID:                uuid.NewString(),
		Ticker:            req.Ticker,
		Benchmark:         benchmark,
		Start:             req.Start,
		End:               req.End,
		InitialInvestment: req.InitialInvestment,
		Metrics: model.SummaryMetrics{
			CAGR:                  cagr,
			AnnualizedVolatility:  annualizeDaily(dailyVol),
			AnnualizedSharpeRatio: sharpe,
		},
		AnnualTable: annualSnapshots(values),
		Series:      values,
	}

	result.Metrics.Beta = s.computeBeta(result, prices, benchPrices, benchErr, benchmark)
	result.Metrics.DividendYield = s.computeDividendYield(result, req, prices, dividends, dividendsErr)

	s.log.Info().
		Str("id", result.ID).
		Str("ticker", req.Ticker).
		Int("points", len(prices.Points)).
		Float64("cagr", cagr).
		Int("warnings", len(result.Warnings)).
		Msg("analysis complete")

	return result, nil
}

// computeBeta derives beta against the benchmark, degrading to absent with a
// warning when the benchmark history is unavailable or degenerate.
func (s *AnalysisService) computeBeta(result *AnalysisResult, prices, benchPrices model.PriceSeries, benchErr error, benchmark string) model.Metric {
	if benchErr != nil || benchPrices.IsEmpty() {
		if benchErr != nil {
			s.log.Warn().Err(benchErr).Str("benchmark", benchmark).Msg("benchmark fetch failed")
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("benchmark %s data unavailable; beta not applicable", benchmark))
		return model.Metric{}
	}

	assetReturns, benchReturns := alignReturns(prices, benchPrices)
	b := beta(assetReturns, benchReturns)
	if !b.Valid {
		result.Warnings = append(result.Warnings, fmt.Sprintf("benchmark %s returns are degenerate; beta not applicable", benchmark))
	}
	return b
}

// computeDividendYield derives the dividend yield over the requested range,
// degrading to absent with a warning when there are no in-range dividends or
// the dividend fetch failed.
func (s *AnalysisService) computeDividendYield(result *AnalysisResult, req AnalysisRequest, prices model.PriceSeries, dividends []model.DividendEvent, dividendsErr error) model.Metric {
	if dividendsErr != nil {
		s.log.Warn().Err(dividendsErr).Str("ticker", req.Ticker).Msg("dividend fetch failed")
		result.Warnings = append(result.Warnings, "dividend data unavailable; dividend yield not applicable")
		return model.Metric{}
	}

	inRange := filterDividends(dividends, req.Start, req.End)
	y := dividendYield(inRange, prices.Points[0].Price)
	if !y.Valid {
		result.Warnings = append(result.Warnings, "no dividends in the requested range; dividend yield not applicable")
	}
	return y
}
