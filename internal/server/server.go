// Package server is the bundled presentation sink: a chi HTTP server that
// renders the latest assembled sections as a single dashboard page. Page
// styling beyond minimal layout is out of scope for the core.
package server

import (
	"encoding/base64"
	"html/template"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"NeonQuotes/internal/model"
)

// Snapshot is one full rendering cycle's output.
type Snapshot struct {
	Sections    []model.Section
	GeneratedAt time.Time
}

// Server serves the most recent snapshot. Updates swap the snapshot pointer
// atomically; a request during a cycle sees the previous snapshot.
type Server struct {
	snapshot atomic.Pointer[Snapshot]
	tmpl     *template.Template

	// OnRequest, when set, runs before the index page is served. The caller
	// wires it to the advisory refresh check.
	OnRequest func()
}

// New creates a server with an empty snapshot.
func New() *Server {
	s := &Server{
		tmpl: template.Must(template.New("index").Funcs(template.FuncMap{
			"logoURI": func(b []byte) template.URL {
				// clearbit serves a mix of image formats; sniff rather than assume
				mime := http.DetectContentType(b)
				return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b))
			},
			"rawdoc": func(b []byte) template.HTML { return template.HTML(b) },
		}).Parse(indexTemplate)),
	}
	s.snapshot.Store(&Snapshot{GeneratedAt: time.Now()})
	return s
}

// Update publishes a new snapshot.
func (s *Server) Update(snap *Snapshot) {
	s.snapshot.Store(snap)
}

// Current returns the published snapshot.
func (s *Server) Current() *Snapshot {
	return s.snapshot.Load()
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/charts/{ticker}.png", s.handleChart)
	r.Get("/healthz", s.handleHealth)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	if s.OnRequest != nil {
		s.OnRequest()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, s.Current()); err != nil {
		log.Printf("[ERROR] render index: %v", err)
	}
}

// handleChart serves the PNG produced by the primary renderer. With
// duplicate tickers the first matching section wins; they render identically.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	for _, sec := range s.Current().Sections {
		if sec.Ticker == ticker && sec.Chart != nil && sec.Chart.Format == "png" {
			w.Header().Set("Content-Type", "image/png")
			w.Write(sec.Chart.Data)
			return
		}
	}
	http.NotFound(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
