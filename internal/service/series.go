package service

import (
	"time"

	"github.com/etfgrowth/analyzer/internal/model"
)

// dailyReturns computes simple daily returns from an ordered price slice.
// The result has one fewer element than prices: returns[i] corresponds to the
// move into day i+1, and the first day has no return.
func dailyReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns[i-1] = prices[i]/prices[i-1] - 1
	}
	return returns
}

// cumulativeReturns compounds daily returns into a growth factor per day.
// The result has one more element than returns: element 0 is defined as 1,
// so the investment value series starts at exactly the initial investment.
func cumulativeReturns(returns []float64) []float64 {
	cumulative := make([]float64, len(returns)+1)
	cumulative[0] = 1
	for i, r := range returns {
		cumulative[i+1] = cumulative[i] * (1 + r)
	}
	return cumulative
}

// investmentValues scales the cumulative growth factors by the initial
// investment and pairs each value with its trading date.
func investmentValues(points []model.PricePoint, cumulative []float64, initial float64) []model.ValuePoint {
	values := make([]model.ValuePoint, len(points))
	for i, p := range points {
		values[i] = model.ValuePoint{Date: p.Date, Value: initial * cumulative[i]}
	}
	return values
}

// filterRange keeps the price points whose date falls in [start, end]
// inclusive, where start and end are midnights in the market timezone. The
// provider may hand back a point just outside the requested window because
// its API range boundary is exclusive.
func filterRange(series model.PriceSeries, start, end time.Time) model.PriceSeries {
	endExclusive := end.AddDate(0, 0, 1)
	points := make([]model.PricePoint, 0, len(series.Points))
	for _, p := range series.Points {
		if !p.Date.Before(start) && p.Date.Before(endExclusive) {
			points = append(points, p)
		}
	}
	return model.PriceSeries{Symbol: series.Symbol, Points: points}
}

// filterDividends keeps the dividend events whose date falls in [start, end]
// inclusive, in the market timezone.
func filterDividends(events []model.DividendEvent, start, end time.Time) []model.DividendEvent {
	endExclusive := end.AddDate(0, 0, 1)
	kept := make([]model.DividendEvent, 0, len(events))
	for _, e := range events {
		if !e.Date.Before(start) && e.Date.Before(endExclusive) {
			kept = append(kept, e)
		}
	}
	return kept
}

// alignReturns pairs the asset's and benchmark's daily returns by trading
// date, dropping dates present in only one calendar. Each return is keyed by
// the date of the later of its two prices. Alignment happens before any
// covariance computation because the two symbols may trade on slightly
// different calendars.
func alignReturns(asset, benchmark model.PriceSeries) (assetReturns, benchmarkReturns []float64) {
	benchByDay := make(map[int]float64, len(benchmark.Points))
	benchReturns := dailyReturns(benchmark.Prices())
	for i, r := range benchReturns {
		benchByDay[dayKey(benchmark.Points[i+1].Date)] = r
	}

	assetRets := dailyReturns(asset.Prices())
	for i, r := range assetRets {
		if br, ok := benchByDay[dayKey(asset.Points[i+1].Date)]; ok {
			assetReturns = append(assetReturns, r)
			benchmarkReturns = append(benchmarkReturns, br)
		}
	}
	return assetReturns, benchmarkReturns
}

// dayKey collapses a timestamp to its calendar day in its own location.
func dayKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// annualSnapshots builds the per-year table: one row per calendar year
// present in the value series, holding the value at the last trading date of
// that year. Input is date-ordered, so the last point seen for a year wins,
// and rows come out ascending by year.
func annualSnapshots(values []model.ValuePoint) []model.AnnualSnapshot {
	var snapshots []model.AnnualSnapshot
	for _, v := range values {
		year := v.Date.Year()
		if n := len(snapshots); n > 0 && snapshots[n-1].Year == year {
			snapshots[n-1].Value = v.Value
			continue
		}
		snapshots = append(snapshots, model.AnnualSnapshot{Year: year, Value: v.Value})
	}
	return snapshots
}
