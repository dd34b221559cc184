package service

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/etfgrowth/analyzer/internal/apperrors"
	"github.com/etfgrowth/analyzer/internal/model"
)

// TestCompoundAnnualGrowthRate tests the CAGR formula and its guards.
//
// WHY: CAGR is the headline metric; a flat year must round-trip to exactly
// zero, and degenerate ranges must fail instead of leaking NaN or infinity
// to the display layer.
func TestCompoundAnnualGrowthRate(t *testing.T) {
	t.Run("zero total return over one year is zero", func(t *testing.T) {
		cagr, err := compoundAnnualGrowthRate(0, 1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, cagr)
	})

	t.Run("doubling over two years", func(t *testing.T) {
		cagr, err := compoundAnnualGrowthRate(1, 2)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt2-1, cagr, 1e-12)
	})

	t.Run("zero years fails instead of returning infinity", func(t *testing.T) {
		_, err := compoundAnnualGrowthRate(0.5, 0)
		require.ErrorIs(t, err, apperrors.ErrNonFiniteMetric)
	})

	t.Run("total loss beyond -100% fails instead of returning NaN", func(t *testing.T) {
		_, err := compoundAnnualGrowthRate(-1.5, 0.5)
		require.ErrorIs(t, err, apperrors.ErrNonFiniteMetric)
	})
}

// TestDailyVolatility tests the sample standard deviation of daily returns.
//
// WHY: the convention is n-1 in the denominator; getting this wrong skews
// every volatility and Sharpe figure the tool reports.
func TestDailyVolatility(t *testing.T) {
	t.Run("matches sample standard deviation", func(t *testing.T) {
		returns := []float64{0.01, 0.03}
		vol, err := dailyVolatility(returns)
		require.NoError(t, err)
		// mean 0.02, squared deviations 1e-4 each, sample variance 2e-4
		assert.InDelta(t, math.Sqrt(2e-4), vol, 1e-12)
	})

	t.Run("is never negative", func(t *testing.T) {
		for _, returns := range [][]float64{
			{0.01, 0.03},
			{-0.5, -0.25, -0.125},
			{0, 0, 0},
			{0.1, -0.1, 0.2, -0.2},
		} {
			vol, err := dailyVolatility(returns)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, vol, 0.0)
		}
	})

	t.Run("fails with fewer than two returns", func(t *testing.T) {
		_, err := dailyVolatility([]float64{0.01})
		require.ErrorIs(t, err, apperrors.ErrNotEnoughData)

		_, err = dailyVolatility(nil)
		require.ErrorIs(t, err, apperrors.ErrNotEnoughData)
	})
}

// TestSharpeRatio tests the annualized Sharpe ratio.
//
// WHY: the formula deliberately divides by the raw daily volatility, and
// zero volatility must fail deterministically rather than produce ±Inf.
func TestSharpeRatio(t *testing.T) {
	t.Run("matches mean excess return over raw volatility", func(t *testing.T) {
		returns := []float64{0.01, 0.03}
		riskFree := 0.0252 // daily rate of exactly 0.0001

		vol, err := dailyVolatility(returns)
		require.NoError(t, err)

		sharpe, err := sharpeRatio(returns, riskFree, vol)
		require.NoError(t, err)

		expected := ((0.02 - 0.0001) / vol) * math.Sqrt(252)
		assert.InDelta(t, expected, sharpe, 1e-12)
	})

	t.Run("zero volatility fails explicitly", func(t *testing.T) {
		returns := []float64{0.01, 0.01, 0.01}
		_, err := sharpeRatio(returns, 0.02, 0)
		require.ErrorIs(t, err, apperrors.ErrZeroVolatility)
	})
}

// TestBeta tests the covariance/variance beta and its absence cases.
//
// WHY: callers must be able to distinguish "beta is zero" from "beta is not
// applicable"; a degenerate benchmark must yield absent, never a number.
func TestBeta(t *testing.T) {
	t.Run("identical series has beta one", func(t *testing.T) {
		returns := []float64{0.01, -0.02, 0.03, 0.005}
		b := beta(returns, returns)
		require.True(t, b.Valid)
		assert.InDelta(t, 1.0, b.Value, 1e-12)
	})

	t.Run("matches direct covariance over variance", func(t *testing.T) {
		asset := []float64{0.02, -0.01, 0.015, 0.004}
		bench := []float64{0.01, -0.005, 0.02, 0.001}

		b := beta(asset, bench)
		require.True(t, b.Valid)

		expected := stat.Covariance(asset, bench, nil) / stat.Variance(bench, nil)
		assert.InDelta(t, expected, b.Value, 1e-12)
	})

	t.Run("absent when benchmark variance is zero", func(t *testing.T) {
		asset := []float64{0.02, -0.01, 0.015}
		bench := []float64{0.01, 0.01, 0.01}
		assert.False(t, beta(asset, bench).Valid)
	})

	t.Run("absent with too few aligned points", func(t *testing.T) {
		assert.False(t, beta([]float64{0.01}, []float64{0.02}).Valid)
		assert.False(t, beta(nil, nil).Valid)
	})
}

// TestDividendYield tests total in-period dividends over the first price.
func TestDividendYield(t *testing.T) {
	loc := time.UTC

	t.Run("sums amounts over the first price exactly", func(t *testing.T) {
		events := []model.DividendEvent{
			{Date: time.Date(2023, 3, 17, 0, 0, 0, 0, loc), Amount: 1.5},
			{Date: time.Date(2023, 6, 16, 0, 0, 0, 0, loc), Amount: 1.6},
		}
		y := dividendYield(events, 100)
		require.True(t, y.Valid)
		assert.InDelta(t, 0.031, y.Value, 1e-12)
	})

	t.Run("absent with no events", func(t *testing.T) {
		assert.False(t, dividendYield(nil, 100).Valid)
	})

	t.Run("absent with zero first price", func(t *testing.T) {
		events := []model.DividendEvent{{Date: time.Now(), Amount: 1}}
		assert.False(t, dividendYield(events, 0).Valid)
	})
}
