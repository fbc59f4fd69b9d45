package triage

import (
	"context"
	"strings"
	"time"

	"github.com/healthbridge/telemed-triage/internal/observability/metrics"
	"github.com/healthbridge/telemed-triage/pkg/logging"
)

// AdviceResult is what the advice pipeline hands back. Success=false
// tells the caller to substitute its own fallback text; the pipeline
// always returns a result, never an error.
type AdviceResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Fixed user-facing messages for the advice fallback tiers.
const (
	adviceRequiredMessage    = "Symptom query is required"
	adviceUnavailableMsg     = "AI service is currently unavailable. Please consult a healthcare provider."
	adviceTemporarilyDownMsg = "AI service is temporarily unavailable. Please try again later."
	noResponseMessage        = "No response generated."
)

// AdviceCache caches composed live advice. Implementations must treat
// backend failures as cache misses.
type AdviceCache interface {
	Get(ctx context.Context, query string) (string, bool)
	Set(ctx context.Context, query, message string)
}

// AdviceGenerator produces the clinical-guidance passage for a query.
// Resolution order is fixed: out-of-scope short circuit, cached result,
// live external call, dataset advice, static unavailability message.
type AdviceGenerator struct {
	matcher *KeywordMatcher
	llm     LLMClient
	cache   AdviceCache
	timeout time.Duration
	metrics *metrics.TriageMetrics
	logger  *logging.Logger
}

// NewAdviceGenerator creates an advice generator. A nil llm means no
// service credential is configured; a nil cache disables caching.
func NewAdviceGenerator(matcher *KeywordMatcher, llm LLMClient, cache AdviceCache, timeout time.Duration, m *metrics.TriageMetrics, logger *logging.Logger) *AdviceGenerator {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AdviceGenerator{
		matcher: matcher,
		llm:     llm,
		cache:   cache,
		timeout: timeout,
		metrics: m,
		logger:  logger,
	}
}

// Generate runs the full advice protocol for one query. It performs at
// most one external call, bounded by the configured timeout, and never
// panics or returns an error to its caller.
func (g *AdviceGenerator) Generate(ctx context.Context, query string) (result AdviceResult) {
	if strings.TrimSpace(query) == "" {
		return AdviceResult{Success: false, Message: adviceRequiredMessage}
	}

	if IsOutOfScope(query) {
		g.metrics.ObserveAdvice("out_of_scope")
		return AdviceResult{Success: true, Message: OutOfScopeMessage}
	}

	if g.cache != nil {
		if cached, ok := g.cache.Get(ctx, query); ok {
			g.metrics.ObserveAdvice("cache")
			return AdviceResult{Success: true, Message: cached}
		}
	}

	datasetAdvice := g.matcher.AdviceFor(query)

	// Outermost safety net: a fault anywhere below resolves to the
	// dataset tier instead of propagating.
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("advice generation panicked", "panic", r)
			result = g.datasetFallback(datasetAdvice, adviceTemporarilyDownMsg)
		}
	}()

	if g.llm == nil {
		g.metrics.ObserveAdvice(tierLabel(datasetAdvice, "unconfigured"))
		return g.datasetFallback(datasetAdvice, adviceUnavailableMsg)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.llm.Complete(callCtx, LLMRequest{
		Prompt:      buildAdvicePrompt(query, datasetAdvice),
		Temperature: 0.3,
		TopP:        0.9,
		TopK:        40,
		MaxTokens:   512,
	})
	if err != nil {
		g.metrics.ObserveLLMLatency("advice", "error", time.Since(start).Seconds())
		g.logger.Warn("advice generation failed, falling back", "error", err)
		g.metrics.ObserveAdvice(tierLabel(datasetAdvice, "unavailable"))
		return g.datasetFallback(datasetAdvice, adviceTemporarilyDownMsg)
	}
	g.metrics.ObserveLLMLatency("advice", "ok", time.Since(start).Seconds())

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		text = noResponseMessage
	}

	if g.cache != nil && text != noResponseMessage {
		g.cache.Set(ctx, query, text)
	}

	g.metrics.ObserveAdvice("live")
	return AdviceResult{Success: true, Message: text}
}

// datasetFallback prefers dataset advice over the static message.
func (g *AdviceGenerator) datasetFallback(datasetAdvice, unavailableMsg string) AdviceResult {
	if datasetAdvice != "" {
		return AdviceResult{Success: true, Message: datasetAdvice}
	}
	return AdviceResult{Success: false, Message: unavailableMsg}
}

func tierLabel(datasetAdvice, without string) string {
	if datasetAdvice != "" {
		return "dataset"
	}
	return without
}
