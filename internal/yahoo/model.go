package yahoo

// Response represents the raw JSON response structure from the Yahoo Finance
// v8 chart API. It maps directly to the wire format:
//
//   - Chart.Result: array of result objects (typically one element)
//   - Chart.Result[].Meta: symbol metadata (name, currency, exchange)
//   - Chart.Result[].Timestamp: Unix timestamps for each data point
//   - Chart.Result[].Indicators: raw and adjusted close price arrays
//   - Chart.Result[].Events.Dividends: dividend payments keyed by timestamp
//   - Chart.Error: optional error message from the Yahoo API
//
// Price arrays use pointers because Yahoo emits null for non-trading entries.
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart is the top-level chart payload.
type Chart struct {
	Result []Result `json:"result"`
	Error  *string  `json:"error"`
}

// Result is one symbol's chart data.
type Result struct {
	Meta       Meta                `json:"meta"`
	Timestamp  []int64             `json:"timestamp"`
	Indicators IndicatorsContainer `json:"indicators"`
	Events     Events              `json:"events"`
}

// Meta holds symbol metadata returned with every chart.
type Meta struct {
	Currency         string `json:"currency"`
	Symbol           string `json:"symbol"`
	ExchangeName     string `json:"exchangeName"`
	FullExchangeName string `json:"fullExchangeName"`
	LongName         string `json:"longName"`
	Shortname        string `json:"shortName"`
}

// IndicatorsContainer wraps the quote and adjusted-close arrays.
type IndicatorsContainer struct {
	Quote    []Quote    `json:"quote"`
	Adjclose []Adjclose `json:"adjclose"`
}

// Quote holds the raw OHLCV arrays, one entry per timestamp.
type Quote struct {
	Open   []*float64 `json:"open"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
}

// Adjclose holds the dividend- and split-adjusted close array.
type Adjclose struct {
	Adjclose []*float64 `json:"adjclose"`
}

// Events holds corporate actions returned when the query asks for them
// (events=div). Dividends are keyed by their Unix timestamp as a string.
type Events struct {
	Dividends map[string]Dividend `json:"dividends"`
}

// Dividend is a single dividend payment event.
type Dividend struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}
