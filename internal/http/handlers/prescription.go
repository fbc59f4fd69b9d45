package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/healthbridge/telemed-triage/internal/triage"
	"github.com/healthbridge/telemed-triage/pkg/logging"
)

// PrescriptionHandler serves the prescription generation endpoint.
type PrescriptionHandler struct {
	composer *triage.Composer
	logger   *logging.Logger
}

// NewPrescriptionHandler creates the prescription handler.
func NewPrescriptionHandler(composer *triage.Composer, logger *logging.Logger) *PrescriptionHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &PrescriptionHandler{composer: composer, logger: logger}
}

// Generate handles POST /api/prescriptions.
func (h *PrescriptionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("prescription request panicked", "panic", rec)
			writeError(w, http.StatusInternalServerError, processingErrorMessage)
		}
	}()

	var req triage.PrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Symptoms) == "" {
		writeError(w, http.StatusBadRequest, "Symptoms are required")
		return
	}

	writeJSON(w, http.StatusOK, h.composer.ComposePrescription(r.Context(), req))
}
