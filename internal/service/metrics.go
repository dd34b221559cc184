package service

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/etfgrowth/analyzer/internal/apperrors"
	"github.com/etfgrowth/analyzer/internal/model"
)

// tradingDaysPerYear is the annualization factor for daily statistics.
const tradingDaysPerYear = 252

// compoundAnnualGrowthRate converts a total return over a period into the
// constant annual rate producing it: (1+totalReturn)^(1/years) - 1.
//
// Sub-day ranges make the exponent explode; a non-finite result is surfaced
// as a domain error instead of letting NaN reach the display layer.
func compoundAnnualGrowthRate(totalReturn, years float64) (float64, error) {
	cagr := math.Pow(1+totalReturn, 1/years) - 1
	if math.IsNaN(cagr) || math.IsInf(cagr, 0) {
		return 0, fmt.Errorf("%w: CAGR over %.4f years", apperrors.ErrNonFiniteMetric, years)
	}
	return cagr, nil
}

// dailyVolatility is the sample standard deviation (n-1 denominator) of the
// daily returns, matching the convention of the statistics libraries this
// engine replaces. Requires at least two returns to be defined.
func dailyVolatility(returns []float64) (float64, error) {
	if len(returns) < 2 {
		return 0, fmt.Errorf("%w: %d daily returns", apperrors.ErrNotEnoughData, len(returns))
	}
	return stat.StdDev(returns, nil), nil
}

// annualizeDaily scales a daily statistic to annual terms by sqrt(252).
func annualizeDaily(v float64) float64 {
	return v * math.Sqrt(tradingDaysPerYear)
}

// sharpeRatio computes the annualized Sharpe ratio: mean daily excess return
// over the daily risk-free rate, divided by the raw daily volatility, scaled
// by sqrt(252).
//
// The denominator is deliberately the volatility of the raw returns, not of
// the excess returns. Zero volatility leaves the ratio undefined and fails
// explicitly rather than producing infinity.
func sharpeRatio(returns []float64, riskFreeAnnualRate, dailyVol float64) (float64, error) {
	if dailyVol == 0 {
		return 0, apperrors.ErrZeroVolatility
	}

	dailyRiskFree := riskFreeAnnualRate / tradingDaysPerYear
	excess := make([]float64, len(returns))
	for i, r := range returns {
		excess[i] = r - dailyRiskFree
	}

	return annualizeDaily(stat.Mean(excess, nil) / dailyVol), nil
}

// beta measures the asset's sensitivity to the benchmark as the ratio of the
// sample covariance of the aligned return pairs to the benchmark's sample
// variance. Absent when there are too few aligned points or the benchmark
// variance is exactly zero.
func beta(assetReturns, benchmarkReturns []float64) model.Metric {
	if len(assetReturns) < 2 || len(assetReturns) != len(benchmarkReturns) {
		return model.Metric{}
	}

	variance := stat.Variance(benchmarkReturns, nil)
	if variance == 0 {
		return model.Metric{}
	}

	return model.SomeMetric(stat.Covariance(assetReturns, benchmarkReturns, nil) / variance)
}

// dividendYield is the sum of in-range dividend amounts divided by the first
// adjusted close of the range. Absent when no dividends fall in the range.
func dividendYield(events []model.DividendEvent, firstPrice float64) model.Metric {
	if len(events) == 0 || firstPrice == 0 {
		return model.Metric{}
	}

	var total float64
	for _, e := range events {
		total += e.Amount
	}
	return model.SomeMetric(total / firstPrice)
}
