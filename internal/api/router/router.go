package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/healthbridge/telemed-triage/internal/http/handlers"
	httpmiddleware "github.com/healthbridge/telemed-triage/internal/http/middleware"
	"github.com/healthbridge/telemed-triage/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger              *logging.Logger
	TriageHandler       *handlers.TriageHandler
	PrescriptionHandler *handlers.PrescriptionHandler
	SymptomsHandler     *handlers.SymptomsHandler
	MedicinesHandler    *handlers.MedicinesHandler
	ChatHistoryHandler  *handlers.ChatHistoryHandler
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string
	StaffAuthSecret     string

	// Requests/sec and burst for the triage endpoints. Zero disables
	// rate limiting.
	RateLimit      float64
	RateLimitBurst int
}

// New creates a chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Patient-facing endpoints.
	r.Group(func(patient chi.Router) {
		if cfg.RateLimit > 0 {
			patient.Use(httpmiddleware.RateLimit(cfg.RateLimit, cfg.RateLimitBurst))
		}
		if cfg.TriageHandler != nil {
			patient.Post("/api/chat", cfg.TriageHandler.Chat)
		}
		if cfg.PrescriptionHandler != nil {
			patient.Post("/api/prescriptions", cfg.PrescriptionHandler.Generate)
		}
		if cfg.SymptomsHandler != nil {
			patient.Route("/api/symptoms", func(r chi.Router) {
				r.Get("/", cfg.SymptomsHandler.List)
				r.Get("/search", cfg.SymptomsHandler.Search)
				r.Get("/advice/{symptom}", cfg.SymptomsHandler.Advice)
			})
		}
	})

	// Staff-facing endpoints.
	if cfg.ChatHistoryHandler != nil || cfg.MedicinesHandler != nil {
		r.Group(func(staff chi.Router) {
			staff.Use(httpmiddleware.StaffJWT(cfg.StaffAuthSecret))
			if cfg.ChatHistoryHandler != nil {
				staff.Get("/api/chat/history/{roomID}", cfg.ChatHistoryHandler.History)
				staff.Get("/api/chat/rooms", cfg.ChatHistoryHandler.Rooms)
			}
			if cfg.MedicinesHandler != nil {
				staff.Route("/api/medicines", func(r chi.Router) {
					r.Get("/", cfg.MedicinesHandler.List)
					r.Get("/{condition}", cfg.MedicinesHandler.Get)
				})
			}
		})
	}

	return r
}
