package validation

import (
	"strings"
	"time"

	"github.com/etfgrowth/analyzer/internal/api/request"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// minStartDate is the earliest selectable start date; the data provider has
// no usable history before it.
var minStartDate = time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)

// ValidateAnalyzeRequest checks an analysis request before any data is
// fetched: ticker present and plausible, dates well-formed with the end
// after the start, and a positive initial investment.
func ValidateAnalyzeRequest(req request.AnalyzeRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Ticker) == "" {
		errors["ticker"] = "ticker symbol is required"
	} else if len(req.Ticker) > 10 {
		errors["ticker"] = "ticker must be 10 characters or less"
	}

	if len(req.Benchmark) > 10 {
		errors["benchmark"] = "benchmark must be 10 characters or less"
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		errors["startDate"] = "start date must be formatted YYYY-MM-DD"
	} else if start.Before(minStartDate) {
		errors["startDate"] = "start date must be 1950-01-01 or later"
	}

	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		errors["endDate"] = "end date must be formatted YYYY-MM-DD"
	}

	if errors["startDate"] == "" && errors["endDate"] == "" && !end.After(start) {
		errors["endDate"] = "end date must be after the start date"
	}

	if req.InitialInvestment <= 0 {
		errors["initialInvestment"] = "initial investment must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
