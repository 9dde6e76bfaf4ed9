// Package board orchestrates the per-ticker pipeline: cached lookups, metric
// derivation, chart rendering, and section assembly. One ticker's failure is
// contained at its own boundary and never aborts the batch.
package board

import (
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"NeonQuotes/internal/chart"
	"NeonQuotes/internal/lookup"
	"NeonQuotes/internal/metric"
	"NeonQuotes/internal/model"
)

const (
	maxNewsEntries = 5
	newsDateLayout = "Jan 02, 2006"

	noticeNoData        = "No data available"
	noticeNoDescription = "No company description available."
	noticeNoNews        = "No recent news available."
	noticeNeedKey       = "Configure a Finnhub API key to enable company news."
)

// Board drives the per-ticker pipeline for a rendering cycle.
type Board struct {
	Lookup     *lookup.Layer
	Chain      *chart.Chain
	Background image.Image  // optional chart background
	LogoClient *http.Client // short-timeout client for best-effort logo fetches
}

// New creates a board. logoTimeout bounds the per-logo fetch.
func New(l *lookup.Layer, c *chart.Chain, bg image.Image, logoTimeout time.Duration) *Board {
	return &Board{
		Lookup:     l,
		Chain:      c,
		Background: bg,
		LogoClient: &http.Client{Timeout: logoTimeout},
	}
}

// Run processes the requested tickers strictly sequentially, in the order
// supplied, and returns one section per ticker. Duplicates are preserved.
func (b *Board) Run(tickers []string, period string) []model.Section {
	sections := make([]model.Section, 0, len(tickers))
	for _, ticker := range tickers {
		sections = append(sections, b.section(ticker, period))
	}
	return sections
}

// section assembles one ticker's output. Any panic inside the pipeline is
// caught here, reported on the section, and the batch continues.
func (b *Board) section(ticker, period string) (sec model.Section) {
	sec.Ticker = ticker
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] ticker %s: %v", ticker, r)
			sec.Err = fmt.Sprintf("Could not load info for %s: %v", ticker, r)
		}
	}()

	info := b.Lookup.Info(ticker)
	hist := b.Lookup.History(ticker, period)

	if len(hist) == 0 {
		sec.Notices = append(sec.Notices, fmt.Sprintf("%s for %s", noticeNoData, ticker))
		return sec
	}

	sec.Header = b.header(info, ticker)
	sec.Chart = b.Chain.Render(hist, ticker, b.Background)
	sec.Metrics = metric.Derive(info, b.Lookup.History(ticker, model.ChangePeriod))

	if summary := strings.TrimSpace(info.Str("longBusinessSummary")); summary != "" {
		sec.Description = summary
	} else {
		sec.Notices = append(sec.Notices, noticeNoDescription)
	}

	b.attachNews(&sec, ticker)
	return sec
}

// header builds the company header with a best-effort logo. A failed logo
// fetch simply omits the image.
func (b *Board) header(info model.CompanyInfo, ticker string) *model.Header {
	h := &model.Header{
		Name:     info.Str("shortName"),
		Sector:   info.Str("sector"),
		Industry: info.Str("industry"),
	}
	if h.Name == "" {
		h.Name = ticker
	}
	if h.Sector == "" {
		h.Sector = "N/A"
	}
	if h.Industry == "" {
		h.Industry = "N/A"
	}
	if u := logoURL(info); u != "" {
		h.Logo = b.fetchLogo(u)
	}
	return h
}

// logoURL resolves the logo location: the provider field when present,
// otherwise a clearbit lookup derived from the website domain.
func logoURL(info model.CompanyInfo) string {
	if u := info.Str("logo_url"); u != "" {
		return u
	}
	domain := info.Str("website")
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	if i := strings.Index(domain, "/"); i >= 0 {
		domain = domain[:i]
	}
	if domain == "" {
		return ""
	}
	return "https://logo.clearbit.com/" + domain
}

func (b *Board) fetchLogo(u string) []byte {
	resp, err := b.LogoClient.Get(u)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	return data
}

// attachNews emits up to maxNewsEntries valid items in provider order, or the
// applicable notice.
func (b *Board) attachNews(sec *model.Section, ticker string) {
	if b.Lookup.News == nil || !b.Lookup.News.HasKey() {
		sec.Notices = append(sec.Notices, noticeNeedKey)
		return
	}
	items := b.Lookup.CompanyNews(ticker)
	if len(items) == 0 {
		sec.Notices = append(sec.Notices, noticeNoNews)
		return
	}
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		source := item.Source
		if source == "" {
			source = "Unknown"
		}
		sec.News = append(sec.News, model.NewsEntry{
			Headline: item.Headline,
			URL:      item.URL,
			Source:   source,
			Date:     time.Unix(item.Datetime, 0).Format(newsDateLayout),
		})
		if len(sec.News) == maxNewsEntries {
			break
		}
	}
}
