package request

// AnalyzeRequest is the JSON body of POST /api/analysis. Dates are calendar
// dates in YYYY-MM-DD form; the benchmark override is optional.
type AnalyzeRequest struct {
	Ticker            string  `json:"ticker"`
	Benchmark         string  `json:"benchmark,omitempty"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	InitialInvestment float64 `json:"initialInvestment"`
}
