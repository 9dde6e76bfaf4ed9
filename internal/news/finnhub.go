// Package news fetches recent company news from the Finnhub company-news API.
package news

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"NeonQuotes/internal/model"
)

const finnhubNewsURL = "https://finnhub.io/api/v1/company-news"

// newsWindow is how far back the company-news query reaches.
const newsWindow = 30 * 24 * time.Hour

// Fetcher defines the interface for a company news provider.
type Fetcher interface {
	// FetchCompanyNews returns recent articles for symbol in provider order.
	// Items missing a headline or URL are already discarded.
	FetchCompanyNews(symbol string) ([]model.NewsItem, error)
	// HasKey reports whether the provider is configured with an API key.
	HasKey() bool
}

// FinnhubFetcher implements Fetcher using the Finnhub REST API.
type FinnhubFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Now     func() time.Time // nil means time.Now
}

// NewFinnhubFetcher creates a fetcher with optional proxy support.
func NewFinnhubFetcher(apiKey, proxyURL string, timeout time.Duration) *FinnhubFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FinnhubFetcher{
		BaseURL: finnhubNewsURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *FinnhubFetcher) HasKey() bool { return f.APIKey != "" }

// FetchCompanyNews queries the last 30 days of company news for symbol.
// Provider order is preserved; no re-sorting is performed.
func (f *FinnhubFetcher) FetchCompanyNews(symbol string) ([]model.NewsItem, error) {
	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("from", now.Add(-newsWindow).Format("2006-01-02"))
	params.Set("to", now.Format("2006-01-02"))
	params.Set("token", f.APIKey)

	req, err := http.NewRequest("GET", f.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch news: status %d, body: %s", resp.StatusCode, string(body))
	}

	var items []model.NewsItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode news: %w", err)
	}

	valid := items[:0]
	for _, item := range items {
		if item.Valid() {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// MockFetcher returns fixed articles for testing.
type MockFetcher struct {
	Items []model.NewsItem
	Key   bool
	Err   error
	Calls int
}

func (m *MockFetcher) HasKey() bool { return m.Key }

func (m *MockFetcher) FetchCompanyNews(_ string) ([]model.NewsItem, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Items, nil
}
