// Package chart renders a price history series as a chart, trying an ordered
// list of renderer strategies and settling on the first one that is available
// and succeeds. Callers never see a renderer failure; they must check the
// series for emptiness before invoking the chain.
package chart

import (
	"image"
	"log"

	"NeonQuotes/internal/model"
)

// Renderer is a single chart rendering strategy.
type Renderer interface {
	Name() string
	// Available reports whether the strategy can run at all. Probing happens
	// once per process, not per call.
	Available() bool
	// Render draws the closing-price line chart. bg is an optional background
	// image composited behind the line; renderers may ignore it.
	Render(hist []model.Bar, ticker string, bg image.Image) (*model.Chart, error)
}

// Chain tries renderers in fixed priority order.
type Chain struct {
	renderers []Renderer
}

// NewChain creates a chain over the given renderers, highest priority first.
func NewChain(renderers ...Renderer) *Chain {
	return &Chain{renderers: renderers}
}

// Render returns the output of the first renderer that is available and
// succeeds, or nil when every strategy is exhausted.
func (c *Chain) Render(hist []model.Bar, ticker string, bg image.Image) *model.Chart {
	for _, r := range c.renderers {
		if !r.Available() {
			continue
		}
		rendered, err := r.Render(hist, ticker, bg)
		if err != nil {
			log.Printf("[WARN] %s renderer failed for %s: %v", r.Name(), ticker, err)
			continue
		}
		return rendered
	}
	return nil
}
