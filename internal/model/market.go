package model

import "time"

// Bar represents a single candlestick bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Closes extracts the closing prices from a bar series.
func Closes(bars []Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// Periods is the fixed set of selectable history ranges.
var Periods = []string{"1mo", "3mo", "6mo", "1y", "2y", "5y", "max"}

// ChangePeriod is the short fixed range used for the daily-change metric.
const ChangePeriod = "5d"

// ValidPeriod reports whether p is one of the selectable history ranges.
func ValidPeriod(p string) bool {
	for _, v := range Periods {
		if p == v {
			return true
		}
	}
	return false
}
