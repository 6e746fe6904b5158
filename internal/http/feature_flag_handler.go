package httpapi

import (
	"context"
	"net/http"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/featureflag"

	"go.uber.org/zap"
)

// FlagStore writable flag backend. featureflag.KVFlags implements it.
type FlagStore interface {
	List(ctx context.Context) (map[string]string, error)
	SetEnableInflux(ctx context.Context, enabled bool) error
	Reset(ctx context.Context, name string) error
}

// FeatureFlagHandler exposes the runtime flags.
type FeatureFlagHandler struct {
	flags  featureflag.Flags
	store  FlagStore
	logger *zap.Logger
}

// NewFeatureFlagHandler store may be nil when flags come from static configuration;
// updates are then rejected.
func NewFeatureFlagHandler(flags featureflag.Flags, store FlagStore, logger *zap.Logger) *FeatureFlagHandler {
	return &FeatureFlagHandler{flags: flags, store: store, logger: logger}
}

type flagsResponse struct {
	EnableInflux bool              `json:"enable_influx"`
	Stored       map[string]string `json:"stored,omitempty"`
}

// List GET /api/v1/feature-flags: effective values plus the raw stored keys.
func (h *FeatureFlagHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	resp := flagsResponse{EnableInflux: h.flags.EnableInflux(r.Context())}
	if h.store != nil {
		stored, err := h.store.List(r.Context())
		if err != nil {
			h.logger.Error("List feature flags failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, Fail("failed to list feature flags"))
			return
		}
		resp.Stored = stored
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

// EnableInflux /api/v1/feature-flags/enable-influx
func (h *FeatureFlagHandler) EnableInflux(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.SetEnableInflux(w, r)
	case http.MethodDelete:
		h.ResetEnableInflux(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// SetEnableInflux PUT {"enabled": bool}
func (h *FeatureFlagHandler) SetEnableInflux(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeJSON(w, http.StatusConflict, Fail("feature flags are read-only (FEATURE_FLAG_SOURCE=env)"))
		return
	}

	var body struct {
		Enabled *bool `json:"enabled"`
	}
	if err := readBodyJSON(r, 1<<10, &body); err != nil || body.Enabled == nil {
		writeJSON(w, http.StatusBadRequest, Fail("body must be {\"enabled\": true|false}"))
		return
	}

	if err := h.store.SetEnableInflux(r.Context(), *body.Enabled); err != nil {
		h.logger.Error("SetEnableInflux failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to update feature flag"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(flagsResponse{EnableInflux: *body.Enabled}))
}

// ResetEnableInflux DELETE removes the stored value; the configured value applies again.
func (h *FeatureFlagHandler) ResetEnableInflux(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeJSON(w, http.StatusConflict, Fail("feature flags are read-only (FEATURE_FLAG_SOURCE=env)"))
		return
	}

	if err := h.store.Reset(r.Context(), featureflag.EnableInfluxKey); err != nil {
		h.logger.Error("Reset enable_influx failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to reset feature flag"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(flagsResponse{EnableInflux: h.flags.EnableInflux(r.Context())}))
}
