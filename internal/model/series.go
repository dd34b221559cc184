package model

import "time"

// PricePoint is one trading day's adjusted closing price.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// PriceSeries is an ordered sequence of daily adjusted-close prices for one
// symbol, strictly increasing by date with no duplicates. It is immutable
// once fetched for a given (symbol, start, end) request.
type PriceSeries struct {
	Symbol string       `json:"symbol"`
	Points []PricePoint `json:"points"`
}

// IsEmpty reports whether the series holds no price points.
func (s PriceSeries) IsEmpty() bool {
	return len(s.Points) == 0
}

// Prices returns the adjusted-close values in date order.
func (s PriceSeries) Prices() []float64 {
	prices := make([]float64, len(s.Points))
	for i, p := range s.Points {
		prices[i] = p.Price
	}
	return prices
}

// DividendEvent is a single dividend payment: the ex-dividend date and the
// per-share amount.
type DividendEvent struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// ValuePoint is one day of the investment-value series handed to the chart.
type ValuePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// AnnualSnapshot is one row of the per-year table: the investment value at
// the last trading date of that calendar year.
type AnnualSnapshot struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// SummaryMetrics holds the scalar statistics of one analysis run. Beta and
// DividendYield are optional: their computation may be undefined (zero
// benchmark variance, no dividends in range) and absence means "not
// applicable", never zero.
type SummaryMetrics struct {
	CAGR                  float64 `json:"cagr"`
	AnnualizedVolatility  float64 `json:"annualizedVolatility"`
	AnnualizedSharpeRatio float64 `json:"annualizedSharpeRatio"`
	Beta                  Metric  `json:"beta"`
	DividendYield         Metric  `json:"dividendYield"`
}
