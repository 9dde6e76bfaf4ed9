package market

import (
	"time"

	"NeonQuotes/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price   float64
	History map[string][]model.Bar // keyed by period, nil falls back to generated bars
	Info    model.CompanyInfo
	Err     error // returned by every call when set

	HistoryCalls int
	InfoCalls    int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ string, period string) ([]model.Bar, error) {
	m.HistoryCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.History != nil {
		return m.History[period], nil
	}
	return generateMockBars(m.Price, 30), nil
}

func (m *MockFetcher) FetchInfo(_ string) (model.CompanyInfo, error) {
	m.InfoCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Info, nil
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
