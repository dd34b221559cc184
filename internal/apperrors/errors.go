package apperrors

import "errors"

// Input validation errors indicate that the analysis request itself is
// malformed. These are reported immediately and no analysis is attempted.
var (
	// ErrEmptyTicker indicates that no ticker symbol was supplied.
	ErrEmptyTicker = errors.New("ticker symbol is required")

	// ErrInvalidDateRange indicates that the end date is not after the start date.
	ErrInvalidDateRange = errors.New("end date must be after the start date")

	// ErrInvalidDate indicates that a date could not be parsed as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidInvestment indicates a zero or negative initial investment amount.
	ErrInvalidInvestment = errors.New("initial investment must be positive")
)

// Data availability errors indicate that the market-data provider returned
// nothing usable for the requested ticker and range. Fatal to the analysis.
var (
	// ErrNoData indicates that the ticker produced no price rows for the
	// requested range. Callers wrap it with the offending symbol.
	ErrNoData = errors.New("no price data for symbol")
)

// Domain computation errors indicate degenerate math over an otherwise valid
// price series. Fatal to the analysis; never silently propagated as NaN.
var (
	// ErrZeroVolatility indicates that the daily return volatility is exactly
	// zero, leaving the Sharpe ratio undefined.
	ErrZeroVolatility = errors.New("volatility is zero, Sharpe ratio undefined")

	// ErrNotEnoughData indicates that the price series holds too few points
	// to derive daily-return statistics.
	ErrNotEnoughData = errors.New("not enough price points to compute returns")

	// ErrNonFiniteMetric indicates that a metric computation produced a
	// non-finite value (NaN or infinity).
	ErrNonFiniteMetric = errors.New("metric computation produced a non-finite value")
)
