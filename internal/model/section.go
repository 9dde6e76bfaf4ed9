package model

import "strings"

// ParseTickers splits a comma-separated user ticker list into normalized
// symbols: trimmed, uppercased, empty entries skipped. Duplicates are kept.
func ParseTickers(input string) []string {
	var tickers []string
	for _, part := range strings.Split(input, ",") {
		t := strings.ToUpper(strings.TrimSpace(part))
		if t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}

// Header is the company header block of a section.
type Header struct {
	Name     string
	Sector   string
	Industry string
	Logo     []byte // raw image bytes, nil when the logo could not be fetched
}

// Chart is a rendered price chart in whichever format the winning
// renderer produced.
type Chart struct {
	Format string // "png" or "html"
	Data   []byte
}

// Metric is one headline figure of the metrics row.
type Metric struct {
	Label string
	Value string
	Delta string // optional, e.g. the percent change next to a daily change
}

// NewsEntry is a display-ready news headline.
type NewsEntry struct {
	Headline string
	URL      string
	Source   string
	Date     string
}

// Section is the assembled dashboard output for one ticker. Fields are nil
// or empty when the corresponding step was skipped.
type Section struct {
	Ticker      string
	Notices     []string
	Err         string // per-ticker failure; the batch continues past it
	Header      *Header
	Chart       *Chart
	Metrics     []Metric
	Description string
	News        []NewsEntry
}
