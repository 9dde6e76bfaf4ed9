package board

import (
	"image"
	"strings"
	"testing"
	"time"

	"NeonQuotes/internal/chart"
	"NeonQuotes/internal/lookup"
	"NeonQuotes/internal/market"
	"NeonQuotes/internal/model"
	"NeonQuotes/internal/news"
)

// stubRenderer renders a fixed payload, or panics on demand per ticker.
type stubRenderer struct {
	panicOn string
}

func (s *stubRenderer) Name() string    { return "stub" }
func (s *stubRenderer) Available() bool { return true }

func (s *stubRenderer) Render(_ []model.Bar, ticker string, _ image.Image) (*model.Chart, error) {
	if ticker == s.panicOn {
		panic("malformed payload for " + ticker)
	}
	return &model.Chart{Format: "stub", Data: []byte(ticker)}, nil
}

func testBars(n int) []model.Bar {
	bars := make([]model.Bar, n)
	for i := range bars {
		bars[i] = model.Bar{Time: time.Date(2025, 6, 1+i, 0, 0, 0, 0, time.UTC), Close: 100 + float64(i)}
	}
	return bars
}

func newTestBoard(mf market.Fetcher, nf news.Fetcher, panicOn string) *Board {
	layer := lookup.NewLayer(mf, nf, time.Hour, time.Hour, 30*time.Minute, nil)
	return New(layer, chart.NewChain(&stubRenderer{panicOn: panicOn}), nil, time.Second)
}

func TestRun_NoDataEmitsNoticeAndSkipsRest(t *testing.T) {
	mf := &market.MockFetcher{History: map[string][]model.Bar{}} // every period empty
	b := newTestBoard(mf, &news.MockFetcher{}, "")

	sections := b.Run([]string{"GONE"}, "1y")
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	sec := sections[0]
	if len(sec.Notices) == 0 || !strings.Contains(sec.Notices[0], "No data available") {
		t.Errorf("expected a no-data notice, got %v", sec.Notices)
	}
	if sec.Chart != nil || sec.Metrics != nil || sec.Header != nil {
		t.Error("no-data ticker must not render a chart, header or metrics")
	}
}

func TestRun_FailureIsolation(t *testing.T) {
	mf := &market.MockFetcher{
		Price: 100,
		History: map[string][]model.Bar{
			"1y": testBars(10),
			"5d": testBars(5),
		},
	}
	b := newTestBoard(mf, &news.MockFetcher{}, "BAD")

	sections := b.Run([]string{"AAPL", "BAD", "TSLA"}, "1y")
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	if sections[0].Err != "" || sections[2].Err != "" {
		t.Errorf("healthy tickers must not carry errors: %q, %q", sections[0].Err, sections[2].Err)
	}
	if sections[1].Err == "" {
		t.Error("failing ticker should surface a per-ticker error")
	}
	if !strings.Contains(sections[1].Err, "BAD") {
		t.Errorf("error should name the ticker, got %q", sections[1].Err)
	}
	if sections[2].Chart == nil {
		t.Error("ticker after a failure must still render")
	}
}

func TestRun_DuplicatesPreserved(t *testing.T) {
	mf := &market.MockFetcher{Price: 100, History: map[string][]model.Bar{"1y": testBars(10), "5d": testBars(5)}}
	b := newTestBoard(mf, &news.MockFetcher{}, "")

	sections := b.Run([]string{"AAPL", "AAPL"}, "1y")
	if len(sections) != 2 {
		t.Fatalf("duplicates must be preserved, got %d sections", len(sections))
	}
}

func TestSection_HeaderFallbacks(t *testing.T) {
	mf := &market.MockFetcher{
		History: map[string][]model.Bar{"1y": testBars(3)},
		Info:    model.CompanyInfo{},
	}
	b := newTestBoard(mf, &news.MockFetcher{}, "")

	sec := b.Run([]string{"AAPL"}, "1y")[0]
	if sec.Header == nil {
		t.Fatal("expected a header")
	}
	if sec.Header.Name != "AAPL" {
		t.Errorf("missing shortName should fall back to the ticker, got %q", sec.Header.Name)
	}
	if sec.Header.Sector != "N/A" || sec.Header.Industry != "N/A" {
		t.Errorf("missing sector/industry should display N/A, got %q/%q", sec.Header.Sector, sec.Header.Industry)
	}
}

func TestSection_DescriptionPlaceholder(t *testing.T) {
	mf := &market.MockFetcher{
		History: map[string][]model.Bar{"1y": testBars(3)},
		Info:    model.CompanyInfo{"longBusinessSummary": "   "},
	}
	b := newTestBoard(mf, &news.MockFetcher{}, "")

	sec := b.Run([]string{"AAPL"}, "1y")[0]
	if sec.Description != "" {
		t.Errorf("blank summary should not become a description, got %q", sec.Description)
	}
	if !containsNotice(sec, "No company description") {
		t.Errorf("expected description placeholder notice, got %v", sec.Notices)
	}
}

func TestSection_NewsCappedAndFiltered(t *testing.T) {
	items := []model.NewsItem{
		{Headline: "", URL: "https://x"}, // discarded
		{Headline: "A", URL: "https://a", Source: "Wire", Datetime: 1717200000},
		{Headline: "B", URL: "https://b"},
		{Headline: "C", URL: "https://c"},
		{Headline: "D", URL: "https://d"},
		{Headline: "E", URL: "https://e"},
		{Headline: "F", URL: "https://f"},
	}
	mf := &market.MockFetcher{History: map[string][]model.Bar{"1y": testBars(3)}}
	b := newTestBoard(mf, &news.MockFetcher{Key: true, Items: items}, "")

	sec := b.Run([]string{"AAPL"}, "1y")[0]
	if len(sec.News) != 5 {
		t.Fatalf("expected at most 5 news entries, got %d", len(sec.News))
	}
	if sec.News[0].Headline != "A" {
		t.Errorf("provider order must be preserved, got %q first", sec.News[0].Headline)
	}
	if sec.News[0].Source != "Wire" {
		t.Errorf("source passthrough: got %q", sec.News[0].Source)
	}
	if sec.News[1].Source != "Unknown" {
		t.Errorf("missing source should display Unknown, got %q", sec.News[1].Source)
	}
}

func TestSection_NewsNotices(t *testing.T) {
	mf := &market.MockFetcher{History: map[string][]model.Bar{"1y": testBars(3)}}

	noKey := newTestBoard(mf, &news.MockFetcher{Key: false}, "")
	sec := noKey.Run([]string{"AAPL"}, "1y")[0]
	if !containsNotice(sec, "API key") {
		t.Errorf("expected key prompt without a key, got %v", sec.Notices)
	}

	mf2 := &market.MockFetcher{History: map[string][]model.Bar{"1y": testBars(3)}}
	keyNoNews := newTestBoard(mf2, &news.MockFetcher{Key: true}, "")
	sec = keyNoNews.Run([]string{"AAPL"}, "1y")[0]
	if !containsNotice(sec, "No recent news") {
		t.Errorf("expected no-news notice with a key and no items, got %v", sec.Notices)
	}
}

func TestLogoURL(t *testing.T) {
	tests := []struct {
		name string
		info model.CompanyInfo
		want string
	}{
		{"provider logo wins", model.CompanyInfo{"logo_url": "https://img/x.png", "website": "https://apple.com"}, "https://img/x.png"},
		{"derived from website", model.CompanyInfo{"website": "https://www.apple.com/about"}, "https://logo.clearbit.com/www.apple.com"},
		{"http scheme stripped", model.CompanyInfo{"website": "http://apple.com"}, "https://logo.clearbit.com/apple.com"},
		{"nothing known", model.CompanyInfo{}, ""},
	}
	for _, tt := range tests {
		if got := logoURL(tt.info); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func containsNotice(sec model.Section, substr string) bool {
	for _, n := range sec.Notices {
		if strings.Contains(n, substr) {
			return true
		}
	}
	return false
}
