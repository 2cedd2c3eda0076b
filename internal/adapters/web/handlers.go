package web

import (
	"net/http"

	"warehouse-server/internal/app"

	"github.com/go-chi/chi/v5"
)

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
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)

	// Distribution-center reads
	r.Get("/api/centers", h.listCenters)
	r.Get("/api/centers/{id}", h.getCenter)
	r.Get("/api/catalog", h.catalog)

	// Replenishment
	r.Post("/api/replenish", h.replenish)

	// Center catalog administration
	r.Post("/api/centers/{id}/items", h.addCenterItem)
	r.Delete("/api/centers/{id}/items/{itemID}", h.deleteCenterItem)

	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
