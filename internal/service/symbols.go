package service

// PresetSymbols returns the high-volume ETF tickers offered in the UI
// dropdown. Users can always type a custom symbol instead.
func PresetSymbols() []string {
	return []string{
		"SPY", "IVV", "VOO", "QQQ", "VTI", "EEM", "IWM", "XLK", "XLF", "TLT",
	}
}
