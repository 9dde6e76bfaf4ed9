// Package metric derives the headline display metrics for one ticker from
// its company info and a short fixed-period price series. Derivation is pure
// and fail-soft: a missing or unusable source field renders as "N/A" or is
// omitted, never surfaced as an error.
package metric

import (
	"fmt"

	"NeonQuotes/internal/model"
)

const placeholder = "N/A"

// Derive computes the metrics row. fiveDay is the fixed short series used for
// the daily-change metric; the change is emitted only when it holds at least
// two closes.
func Derive(info model.CompanyInfo, fiveDay []model.Bar) []model.Metric {
	metrics := []model.Metric{
		{Label: "Current Price", Value: currentPrice(info)},
		{Label: "Market Cap", Value: marketCap(info)},
		{Label: "52w High / Low", Value: yearRange(info)},
	}

	if m, ok := dailyChange(fiveDay); ok {
		metrics = append(metrics, m)
	}
	return metrics
}

func currentPrice(info model.CompanyInfo) string {
	price, ok := info.Num("currentPrice")
	if !ok {
		price, ok = info.Num("regularMarketPrice")
	}
	if !ok {
		return placeholder
	}
	return "$" + group(fmt.Sprintf("%.2f", price))
}

func marketCap(info model.CompanyInfo) string {
	cap, ok := info.Num("marketCap")
	if !ok {
		return placeholder
	}
	return "$" + group(fmt.Sprintf("%.0f", cap))
}

func yearRange(info model.CompanyInfo) string {
	high, okHigh := info.Num("fiftyTwoWeekHigh")
	low, okLow := info.Num("fiftyTwoWeekLow")
	if !okHigh || !okLow {
		return placeholder
	}
	return fmt.Sprintf("$%.2f / $%.2f", high, low)
}

// dailyChange builds the daily-change metric from the last two closes. The
// metric is absent, not zero, when the series holds fewer than two points;
// the percent is omitted when the previous close is zero.
func dailyChange(fiveDay []model.Bar) (model.Metric, bool) {
	if len(fiveDay) < 2 {
		return model.Metric{}, false
	}
	last := fiveDay[len(fiveDay)-1].Close
	prev := fiveDay[len(fiveDay)-2].Close
	m := model.Metric{
		Label: "Daily Change",
		Value: fmt.Sprintf("$%.2f", last-prev),
	}
	if prev != 0 {
		m.Delta = fmt.Sprintf("%.2f%%", (last-prev)/prev*100)
	}
	return m, true
}

// group inserts comma separators into the integer part of a formatted number.
func group(s string) string {
	if len(s) > 0 && s[0] == '-' {
		return "-" + group(s[1:])
	}
	intPart, frac := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}
	if len(intPart) <= 3 {
		return intPart + frac
	}
	var out []byte
	start := len(intPart) % 3
	if start > 0 {
		out = append(out, intPart[:start]...)
	}
	for i := start; i < len(intPart); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i:i+3]...)
	}
	return string(out) + frac
}
