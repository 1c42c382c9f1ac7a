// Package httpapi exposes a generator over HTTP for previewing and
// scraping: frames on demand as PNG, health and prometheus metrics.
package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mirageproc/mirage/internal/render"
	"github.com/mirageproc/mirage/pkg/domain"
)

// Generator defines the interface for the generation core.
type Generator interface {
	Generate(ctx context.Context) (*domain.Frame, error)
}

// Server serves frames from a generator. Rounds are serialized with a
// mutex: the engine's update/resolve cycle is single-threaded by contract.
type Server struct {
	Generator Generator

	mu sync.Mutex
}

// NewHandler creates a new HTTP handler for the generator.
// Gatherer is optional; nil skips the /metrics route.
func NewHandler(gen Generator, gatherer prometheus.Gatherer) http.Handler {
	server := &Server{Generator: gen}
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	r.Get("/frame.png", server.GetFrame)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// GetFrame handles GET /frame.png: one generation round, encoded as PNG.
func (s *Server) GetFrame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	frame, err := s.Generator.Generate(r.Context())
	s.mu.Unlock()
	if err != nil {
		http.Error(w, fmt.Sprintf("generate error: %v", err), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, frame); err != nil {
		http.Error(w, fmt.Sprintf("encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}
