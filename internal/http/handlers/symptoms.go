package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/healthbridge/telemed-triage/internal/dataset"
	"github.com/healthbridge/telemed-triage/internal/triage"
)

// SymptomsHandler exposes the reference dataset: the symptom listing,
// keyword search, and per-symptom dataset advice.
type SymptomsHandler struct {
	catalog *dataset.Catalog
	matcher *triage.KeywordMatcher
}

// NewSymptomsHandler creates the dataset handler.
func NewSymptomsHandler(catalog *dataset.Catalog, matcher *triage.KeywordMatcher) *SymptomsHandler {
	if catalog == nil {
		catalog = &dataset.Catalog{}
	}
	return &SymptomsHandler{catalog: catalog, matcher: matcher}
}

type symptomsListResponse struct {
	Success  bool                   `json:"success"`
	Count    int                    `json:"count"`
	Symptoms []dataset.SymptomEntry `json:"symptoms"`
}

// List handles GET /api/symptoms.
func (h *SymptomsHandler) List(w http.ResponseWriter, r *http.Request) {
	symptoms := h.catalog.Symptoms
	if symptoms == nil {
		symptoms = []dataset.SymptomEntry{}
	}
	writeJSON(w, http.StatusOK, symptomsListResponse{
		Success:  true,
		Count:    len(symptoms),
		Symptoms: symptoms,
	})
}

type symptomSearchResponse struct {
	Success    bool                     `json:"success"`
	Query      string                   `json:"query"`
	Conditions []dataset.ConditionEntry `json:"conditions"`
}

// Search handles GET /api/symptoms/search?query=...
func (h *SymptomsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("query"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "query parameter is required")
		return
	}

	conditions := h.matcher.Match(q)
	if conditions == nil {
		conditions = []dataset.ConditionEntry{}
	}
	writeJSON(w, http.StatusOK, symptomSearchResponse{
		Success:    true,
		Query:      q,
		Conditions: conditions,
	})
}

type symptomAdviceResponse struct {
	Success bool   `json:"success"`
	Symptom string `json:"symptom"`
	Advice  string `json:"advice"`
}

// Advice handles GET /api/symptoms/advice/{symptom}.
func (h *SymptomsHandler) Advice(w http.ResponseWriter, r *http.Request) {
	symptom := strings.TrimSpace(chi.URLParam(r, "symptom"))
	if symptom == "" {
		writeError(w, http.StatusBadRequest, "symptom is required")
		return
	}

	advice := h.matcher.AdviceFor(symptom)
	if advice == "" {
		writeError(w, http.StatusNotFound, "no advice found for symptom")
		return
	}
	writeJSON(w, http.StatusOK, symptomAdviceResponse{
		Success: true,
		Symptom: symptom,
		Advice:  advice,
	})
}
