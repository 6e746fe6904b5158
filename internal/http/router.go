package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps http.ServeMux.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

// HandleHandler registers an http.Handler (promhttp and the like).
func (r *Router) HandleHandler(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterHealthRoutes liveness probe.
func (r *Router) RegisterHealthRoutes() {
	r.Handle("/health", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, Ok("ok"))
	})
}

// RegisterAssetRoutes /api/v1/assets/{assetId}/...
func (r *Router) RegisterAssetRoutes(h *RegisterHandler) {
	r.Handle(assetsPrefix, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ServeHTTP(w, req)
	})
}

// RegisterFeatureFlagRoutes /api/v1/feature-flags
func (r *Router) RegisterFeatureFlagRoutes(h *FeatureFlagHandler) {
	r.Handle("/api/v1/feature-flags", h.List)
	r.Handle("/api/v1/feature-flags/enable-influx", h.EnableInflux)
}
