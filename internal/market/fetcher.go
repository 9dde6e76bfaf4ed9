package market

import "NeonQuotes/internal/model"

// Fetcher defines the interface for a market data provider.
type Fetcher interface {
	// FetchHistory returns the price history for symbol over one of the
	// model.Periods ranges (or model.ChangePeriod), ordered by ascending time.
	FetchHistory(symbol, period string) ([]model.Bar, error)
	// FetchInfo returns the provider's company field mapping for symbol.
	FetchInfo(symbol string) (model.CompanyInfo, error)
	Name() string
}
