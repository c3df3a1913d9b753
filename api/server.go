/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/defaults   Default scenario
  /api/analyze    Full analysis
  /api/schedule   Paged amortization table
  /api/report     PDF export
  /*              Landing page

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/defaults", h.GetDefaults)
		r.Post("/analyze", h.Analyze)
		r.Post("/schedule", h.GetSchedule)
		r.Post("/report", h.GenerateReport)
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Mortgage Analysis Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Mortgage Analysis Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/defaults">/api/defaults</a> - Default scenario (GET)</li>
<li><code>/api/analyze</code> - Full analysis (POST scenario JSON)</li>
<li><code>/api/schedule?page=1&page_size=12</code> - Amortization table (POST scenario JSON)</li>
<li><code>/api/report</code> - PDF report (POST scenario JSON)</li>
</ul>
</body>
</html>`))
	})

	return r
}
