package server

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nguyentantai21042004/bisub/internal/config"
	"github.com/nguyentantai21042004/bisub/internal/logger"
	"github.com/nguyentantai21042004/bisub/internal/processor"
)

// NewRouter wires the upload endpoint to the processor
func NewRouter(cfg *config.Config, proc processor.Processor, log logger.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(log))

	h := newTranslateHandler(cfg, proc, log)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)
		r.Post("/translate", h.Translate)
	})

	return r
}
