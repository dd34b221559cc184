package testutil

import (
	"testing"
	"time"

	"github.com/etfgrowth/analyzer/internal/model"
)

// MarketLocation loads the canonical test timezone (US Eastern).
func MarketLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	return loc
}

// Day builds a midnight timestamp in the given location.
func Day(loc *time.Location, year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// DailySeries builds a price series starting at start with one point per
// consecutive calendar day, one per price.
func DailySeries(symbol string, start time.Time, prices ...float64) model.PriceSeries {
	points := make([]model.PricePoint, len(prices))
	for i, p := range prices {
		points[i] = model.PricePoint{Date: start.AddDate(0, 0, i), Price: p}
	}
	return model.PriceSeries{Symbol: symbol, Points: points}
}

// SeriesOn builds a price series from explicit (date, price) pairs; dates and
// prices must have equal length.
func SeriesOn(t *testing.T, symbol string, dates []time.Time, prices []float64) model.PriceSeries {
	t.Helper()
	if len(dates) != len(prices) {
		t.Fatalf("SeriesOn: %d dates but %d prices", len(dates), len(prices))
	}
	points := make([]model.PricePoint, len(dates))
	for i := range dates {
		points[i] = model.PricePoint{Date: dates[i], Price: prices[i]}
	}
	return model.PriceSeries{Symbol: symbol, Points: points}
}
