package triage

import (
	"context"
	"strings"
	"time"

	"github.com/healthbridge/telemed-triage/internal/observability/metrics"
	"github.com/healthbridge/telemed-triage/pkg/logging"
)

// PrescriptionGenerator produces a structured prescription document.
// Any failure of the external service resolves to the local template;
// the generator never returns an error.
type PrescriptionGenerator struct {
	llm     LLMClient
	timeout time.Duration
	metrics *metrics.TriageMetrics
	logger  *logging.Logger
	now     func() time.Time
}

// NewPrescriptionGenerator creates a prescription generator. A nil llm
// means no service credential is configured.
func NewPrescriptionGenerator(llm LLMClient, timeout time.Duration, m *metrics.TriageMetrics, logger *logging.Logger) *PrescriptionGenerator {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PrescriptionGenerator{
		llm:     llm,
		timeout: timeout,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Generate returns the prescription text for the patient data. The
// fallback template is computed locally and satisfies the same
// structural contract as a live answer.
func (g *PrescriptionGenerator) Generate(ctx context.Context, in PrescriptionInput) (text string) {
	in = in.normalized()
	now := g.now()

	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("prescription generation panicked", "panic", r)
			g.metrics.ObservePrescription("fallback")
			text = fallbackPrescription(in, now)
		}
	}()

	if g.llm == nil {
		g.metrics.ObservePrescription("fallback")
		return fallbackPrescription(in, now)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.llm.Complete(callCtx, LLMRequest{
		Prompt:      buildPrescriptionPrompt(in, now),
		Temperature: 0.3,
		TopP:        0.9,
		TopK:        40,
		MaxTokens:   1024,
	})
	if err != nil {
		g.metrics.ObserveLLMLatency("prescription", "error", time.Since(start).Seconds())
		g.logger.Warn("prescription generation failed, using template", "error", err)
		g.metrics.ObservePrescription("fallback")
		return fallbackPrescription(in, now)
	}
	g.metrics.ObserveLLMLatency("prescription", "ok", time.Since(start).Seconds())

	// An empty candidate cannot satisfy the structural contract, so it
	// resolves to the template like any other failure.
	generated := strings.TrimSpace(resp.Text)
	if generated == "" {
		g.metrics.ObservePrescription("fallback")
		return fallbackPrescription(in, now)
	}

	g.metrics.ObservePrescription("live")
	return generated
}
