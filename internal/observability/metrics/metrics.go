package metrics

import "github.com/prometheus/client_golang/prometheus"

// TriageMetrics exposes counters/histograms for the symptom triage pipeline.
type TriageMetrics struct {
	adviceTotal  *prometheus.CounterVec
	matchTotal   *prometheus.CounterVec
	llmLatency   *prometheus.HistogramVec
	prescription *prometheus.CounterVec
}

func NewTriageMetrics(reg prometheus.Registerer) *TriageMetrics {
	m := &TriageMetrics{
		adviceTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "telemed",
			Subsystem: "triage",
			Name:      "advice_total",
			Help:      "Advice results by resolution tier",
		}, []string{"tier"}),
		matchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "telemed",
			Subsystem: "triage",
			Name:      "keyword_match_total",
			Help:      "Keyword matcher outcomes by strategy",
		}, []string{"strategy"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "telemed",
			Subsystem: "triage",
			Name:      "llm_latency_seconds",
			Help:      "Latency of generative-text calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "status"}),
		prescription: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "telemed",
			Subsystem: "triage",
			Name:      "prescription_total",
			Help:      "Prescription generations by source",
		}, []string{"source"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.adviceTotal, m.matchTotal, m.llmLatency, m.prescription)
	return m
}

// ObserveAdvice records which fallback tier resolved an advice request.
func (m *TriageMetrics) ObserveAdvice(tier string) {
	if m == nil {
		return
	}
	m.adviceTotal.WithLabelValues(tier).Inc()
}

// ObserveMatch records which matching strategy produced the result.
func (m *TriageMetrics) ObserveMatch(strategy string) {
	if m == nil {
		return
	}
	m.matchTotal.WithLabelValues(strategy).Inc()
}

// ObserveLLMLatency records the duration of one generative-text call.
func (m *TriageMetrics) ObserveLLMLatency(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.llmLatency.WithLabelValues(operation, status).Observe(seconds)
}

// ObservePrescription records whether a prescription came from the live
// service or the local template.
func (m *TriageMetrics) ObservePrescription(source string) {
	if m == nil {
		return
	}
	m.prescription.WithLabelValues(source).Inc()
}
