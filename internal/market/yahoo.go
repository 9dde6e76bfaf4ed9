package market

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"NeonQuotes/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	BaseURL string // overridable for tests
	Client  *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string, timeout time.Duration) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		BaseURL: yahooBaseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// at reads vals[i], treating a too-short array as a null value. Yahoo
// occasionally ships quote arrays shorter than the timestamp array.
func at(vals []interface{}, i int) float64 {
	if i >= len(vals) {
		return 0
	}
	return toFloat(vals[i])
}

// FetchHistory fetches daily bars for the given range via the chart API.
func (f *YahooFetcher) FetchHistory(symbol, period string) ([]model.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		f.BaseURL, url.PathEscape(symbol), url.QueryEscape(period))

	body, err := f.get(u)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data returned")
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := at(quote.Open, i)
		h := at(quote.High, i)
		l := at(quote.Low, i)
		c := at(quote.Close, i)
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.Bar{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: at(quote.Volume, i),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// yahooSummary is the response structure from the quoteSummary API.
// Module contents stay untyped; numeric fields arrive as {"raw": x, "fmt": s}.
type yahooSummary struct {
	QuoteSummary struct {
		Result []map[string]map[string]interface{} `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// FetchInfo fetches company metadata via the quoteSummary API and flattens
// the module maps into a single loosely-typed mapping.
func (f *YahooFetcher) FetchInfo(symbol string) (model.CompanyInfo, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price,summaryProfile,summaryDetail,financialData",
		f.BaseURL, url.PathEscape(symbol))

	body, err := f.get(u)
	if err != nil {
		return nil, err
	}

	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no info returned")
	}

	info := model.CompanyInfo{}
	for _, module := range summary.QuoteSummary.Result[0] {
		for key, value := range module {
			info[key] = flatten(value)
		}
	}
	return info, nil
}

// flatten unwraps Yahoo's {"raw": x, "fmt": s} number envelopes.
func flatten(v interface{}) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return v
	}
	if raw, ok := m["raw"]; ok {
		return raw
	}
	return v
}

func (f *YahooFetcher) get(u string) ([]byte, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
