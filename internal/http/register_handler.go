package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/metrics"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/service"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/units"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const assetsPrefix = "/api/v1/assets/"

// RegisterHandler serves register data of an asset.
type RegisterHandler struct {
	svc    service.RegisterService
	logger *zap.Logger
}

func NewRegisterHandler(svc service.RegisterService, logger *zap.Logger) *RegisterHandler {
	return &RegisterHandler{svc: svc, logger: logger}
}

// ServeHTTP dispatches
//
//	GET /api/v1/assets/{assetId}/status-registers[?unit=kPa]
//	GET /api/v1/assets/{assetId}/status-registers/export[?unit=kPa]
//	GET /api/v1/assets/{assetId}/param-standard-data[?unit=kPa]
//
// unit converts every measurement of the same category; others are left as stored.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, assetsPrefix), "/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" {
		writeJSON(w, http.StatusNotFound, Fail("not found"))
		return
	}

	assetID, err := uuid.Parse(parts[0])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(fmt.Sprintf("invalid asset id %q", parts[0])))
		return
	}

	unit := r.URL.Query().Get("unit")
	if unit != "" {
		if _, ok := units.CategoryOf(unit); !ok {
			writeJSON(w, http.StatusBadRequest, Fail(fmt.Sprintf("unknown unit %q", unit)))
			return
		}
	}

	switch parts[1] {
	case "status-registers":
		h.GetStatusRegisters(w, r, assetID)
	case "status-registers/export":
		h.ExportStatusRegisters(w, r, assetID)
	case "param-standard-data":
		h.GetParamStandardData(w, r, assetID)
	default:
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	}
}

// GetStatusRegisters result is null for the zero asset id and [] for an unknown asset.
func (h *RegisterHandler) GetStatusRegisters(w http.ResponseWriter, r *http.Request, assetID uuid.UUID) {
	records, err := h.svc.GetAssetStatusRegisterData(r.Context(), assetID)
	if err != nil {
		h.logger.Error("GetAssetStatusRegisterData failed",
			zap.String("asset_id", assetID.String()),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, Fail("failed to load status registers"))
		return
	}
	convertRegisterData(records, r.URL.Query().Get("unit"))
	writeJSON(w, http.StatusOK, Ok(records))
}

func (h *RegisterHandler) GetParamStandardData(w http.ResponseWriter, r *http.Request, assetID uuid.UUID) {
	records, err := h.svc.GetParamStandardData(r.Context(), assetID)
	if err != nil {
		h.logger.Error("GetParamStandardData failed",
			zap.String("asset_id", assetID.String()),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, Fail("failed to load param standard data"))
		return
	}
	unit := r.URL.Query().Get("unit")
	for i := range records {
		records[i].Measurement = convertMeasurement(records[i].Measurement, unit)
	}
	writeJSON(w, http.StatusOK, Ok(records))
}

// ExportStatusRegisters writes the status registers as an .xlsx attachment. The zero
// asset id has no data and answers 204.
func (h *RegisterHandler) ExportStatusRegisters(w http.ResponseWriter, r *http.Request, assetID uuid.UUID) {
	records, err := h.svc.GetAssetStatusRegisterData(r.Context(), assetID)
	if err != nil {
		h.logger.Error("GetAssetStatusRegisterData failed for export",
			zap.String("asset_id", assetID.String()),
			zap.Error(err),
		)
		metrics.IncExport(metrics.ResultError)
		writeJSON(w, http.StatusInternalServerError, Fail("failed to load status registers"))
		return
	}
	if records == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	convertRegisterData(records, r.URL.Query().Get("unit"))

	excelData, err := GenerateRegisterExport(records)
	if err != nil {
		h.logger.Error("GenerateRegisterExport failed", zap.Error(err))
		metrics.IncExport(metrics.ResultError)
		writeJSON(w, http.StatusInternalServerError, Fail(fmt.Sprintf("failed to generate export: %v", err)))
		return
	}
	metrics.IncExport(metrics.ResultSuccess)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=status-registers-%s.xlsx", assetID))
	w.WriteHeader(http.StatusOK)
	w.Write(excelData)
}

func convertRegisterData(records []domain.RegisterData, unit string) {
	for i := range records {
		records[i].Measurement = convertMeasurement(records[i].Measurement, unit)
	}
}

// convertMeasurement returns m in unit, or m unchanged when unit is empty or of
// another category.
func convertMeasurement(m *units.Measurement, unit string) *units.Measurement {
	if m == nil || unit == "" {
		return m
	}
	out, err := m.To(unit)
	if err != nil {
		return m
	}
	return &out
}
