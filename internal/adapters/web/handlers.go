package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"finstat/internal/app"
)

const maxBodyBytes = 10 << 20 // trial balance imports can run to thousands of rows

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(maxBodyBytes))

	r.Get("/api/health", h.health)
	r.Get("/api/chart", h.chart)

	r.Route("/api/entities", func(r chi.Router) {
		r.Get("/", h.listEntities)
		r.Post("/", h.createEntity)
		r.Route("/{entityID}", func(r chi.Router) {
			r.Get("/", h.getEntity)
			r.Delete("/", h.deleteEntity)
			r.Put("/trial-balance", h.importTrialBalance)
			r.Put("/schedules", h.saveSchedules)
			r.Post("/ledgers/{ledgerID}/classify", h.classifyLedger)
			r.Post("/ledgers/{ledgerID}/suggest", h.suggestMapping)
			r.Post("/suggest-batch", h.suggestMappingBatch)
			r.Get("/validate", h.validate)
			r.Get("/statements", h.statements)
			r.Post("/finalize", h.finalize)
		})
	})

	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *Handler) chart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Chart())
}
