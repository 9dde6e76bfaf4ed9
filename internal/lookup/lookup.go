// Package lookup wraps the external data clients with a time-boxed cache and
// the fail-soft policy: any client failure maps to an empty result and is
// never raised past this boundary. Downstream code treats "empty" and
// "genuinely no data" identically.
package lookup

import (
	"log"
	"time"

	"NeonQuotes/internal/market"
	"NeonQuotes/internal/model"
	"NeonQuotes/internal/news"
)

// Layer is the cached lookup layer over the market and news providers.
type Layer struct {
	Market market.Fetcher
	News   news.Fetcher

	HistoryTTL time.Duration
	InfoTTL    time.Duration
	NewsTTL    time.Duration

	cache *Cache
}

// NewLayer creates a lookup layer with the given TTLs. now may be nil.
func NewLayer(mf market.Fetcher, nf news.Fetcher, historyTTL, infoTTL, newsTTL time.Duration, now func() time.Time) *Layer {
	return &Layer{
		Market:     mf,
		News:       nf,
		HistoryTTL: historyTTL,
		InfoTTL:    infoTTL,
		NewsTTL:    newsTTL,
		cache:      NewCache(now),
	}
}

// History returns the cached price history for (symbol, period), fetching on
// miss or expiry. Failures map to an empty series.
func (l *Layer) History(symbol, period string) []model.Bar {
	key := symbol + "|" + period
	if v, ok := l.cache.Get(KindHistory, key, l.HistoryTTL); ok {
		return v.([]model.Bar)
	}
	bars, err := l.Market.FetchHistory(symbol, period)
	if err != nil {
		log.Printf("[WARN] history lookup %s %s: %v", symbol, period, err)
		bars = nil
	}
	l.cache.Put(KindHistory, key, bars)
	return bars
}

// Info returns the cached company info for symbol, fetching on miss or
// expiry. Failures map to an empty mapping.
func (l *Layer) Info(symbol string) model.CompanyInfo {
	if v, ok := l.cache.Get(KindInfo, symbol, l.InfoTTL); ok {
		return v.(model.CompanyInfo)
	}
	info, err := l.Market.FetchInfo(symbol)
	if err != nil {
		log.Printf("[WARN] info lookup %s: %v", symbol, err)
		info = model.CompanyInfo{}
	}
	l.cache.Put(KindInfo, symbol, info)
	return info
}

// CompanyNews returns the cached recent news for symbol. An unconfigured API
// key short-circuits to an empty list without a network call.
func (l *Layer) CompanyNews(symbol string) []model.NewsItem {
	if l.News == nil || !l.News.HasKey() {
		return nil
	}
	if v, ok := l.cache.Get(KindNews, symbol, l.NewsTTL); ok {
		return v.([]model.NewsItem)
	}
	items, err := l.News.FetchCompanyNews(symbol)
	if err != nil {
		log.Printf("[WARN] news lookup %s: %v", symbol, err)
		items = nil
	}
	l.cache.Put(KindNews, symbol, items)
	return items
}
