package triage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var prescriptionHeadings = []string{
	"PRESCRIPTION RECOMMENDATION",
	"DIAGNOSIS:",
	"MEDICATIONS:",
	"RECOMMENDATIONS (Self-care DOs):",
	"AVOID (DON'Ts):",
	"WARNINGS:",
	"FOLLOW-UP:",
	"DISCLAIMER:",
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
}

func newTestPrescriptionGenerator(llm LLMClient) *PrescriptionGenerator {
	g := NewPrescriptionGenerator(llm, time.Second, nil, nil)
	g.now = fixedNow
	return g
}

func TestPrescriptionLive(t *testing.T) {
	llm := &stubLLMClient{resp: LLMResponse{Text: "PRESCRIPTION RECOMMENDATION\n..."}}
	g := newTestPrescriptionGenerator(llm)

	text := g.Generate(context.Background(), PrescriptionInput{Symptoms: "fever and chills"})

	assert.Equal(t, "PRESCRIPTION RECOMMENDATION\n...", text)
	assert.Equal(t, 1, llm.calls)
	assert.Equal(t, int32(1024), llm.lastReq.MaxTokens)
}

func TestPrescriptionPromptCarriesPatientData(t *testing.T) {
	llm := &stubLLMClient{resp: LLMResponse{Text: "ok"}}
	g := newTestPrescriptionGenerator(llm)

	g.Generate(context.Background(), PrescriptionInput{
		Symptoms:       "fever and chills",
		Age:            "34",
		Weight:         "70kg",
		Allergies:      "penicillin",
		Complexity:     "basic",
		Specialization: "General Physician",
	})

	prompt := llm.lastReq.Prompt
	assert.Contains(t, prompt, "fever and chills")
	assert.Contains(t, prompt, "34")
	assert.Contains(t, prompt, "70kg")
	assert.Contains(t, prompt, "penicillin")
	assert.Contains(t, prompt, "None reported")
	assert.Contains(t, prompt, "March 14, 2026")
	assert.Contains(t, prompt, PrescriptionDisclaimer)
}

func TestPrescriptionFallbackStructure(t *testing.T) {
	tests := []struct {
		name string
		llm  LLMClient
	}{
		{"no client configured", nil},
		{"service error", &stubLLMClient{err: errors.New("quota exceeded")}},
		{"empty candidate", &stubLLMClient{resp: LLMResponse{Text: "  \n"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestPrescriptionGenerator(tt.llm)

			text := g.Generate(context.Background(), PrescriptionInput{Symptoms: "fever and chills"})

			for _, heading := range prescriptionHeadings {
				assert.Contains(t, text, heading)
			}
			assert.Contains(t, text, PrescriptionDisclaimer)
			assert.Contains(t, text, "fever and chills")
			assert.Contains(t, text, "Generated: March 14, 2026")
		})
	}
}

func TestPrescriptionRecoversFromPanic(t *testing.T) {
	g := newTestPrescriptionGenerator(panickyLLMClient{})

	text := g.Generate(context.Background(), PrescriptionInput{Symptoms: "fever"})

	for _, heading := range prescriptionHeadings {
		assert.Contains(t, text, heading)
	}
	assert.Contains(t, text, PrescriptionDisclaimer)
}

func TestPrescriptionInputNormalization(t *testing.T) {
	in := PrescriptionInput{Symptoms: "  fever  "}.normalized()

	assert.Equal(t, "fever", in.Symptoms)
	assert.Equal(t, "Not specified", in.Age)
	assert.Equal(t, "Not specified", in.Weight)
	assert.Equal(t, "None reported", in.Allergies)
	assert.Equal(t, "None reported", in.Medications)
	assert.Equal(t, "General Practice", in.Specialization)
}
