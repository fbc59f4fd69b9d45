package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/healthbridge/telemed-triage/internal/dataset"
)

// MedicinesHandler exposes the medicines catalog for staff browsing.
type MedicinesHandler struct {
	catalog *dataset.Catalog
}

// NewMedicinesHandler creates the medicines catalog handler.
func NewMedicinesHandler(catalog *dataset.Catalog) *MedicinesHandler {
	if catalog == nil {
		catalog = &dataset.Catalog{}
	}
	return &MedicinesHandler{catalog: catalog}
}

type medicinesListResponse struct {
	Success    bool                     `json:"success"`
	Count      int                      `json:"count"`
	Conditions []dataset.ConditionEntry `json:"conditions"`
}

// List handles GET /api/medicines.
func (h *MedicinesHandler) List(w http.ResponseWriter, r *http.Request) {
	conditions := h.catalog.Conditions
	if conditions == nil {
		conditions = []dataset.ConditionEntry{}
	}
	writeJSON(w, http.StatusOK, medicinesListResponse{
		Success:    true,
		Count:      len(conditions),
		Conditions: conditions,
	})
}

type medicinesConditionResponse struct {
	Success   bool               `json:"success"`
	Condition string             `json:"condition"`
	Medicines []dataset.Medicine `json:"medicines"`
}

// Get handles GET /api/medicines/{condition}.
func (h *MedicinesHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "condition"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "condition is required")
		return
	}

	entry, ok := h.catalog.FindCondition(name)
	if !ok {
		writeError(w, http.StatusNotFound, "Condition not found")
		return
	}
	writeJSON(w, http.StatusOK, medicinesConditionResponse{
		Success:   true,
		Condition: entry.Condition,
		Medicines: entry.Medicines,
	})
}
