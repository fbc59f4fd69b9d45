package triage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/healthbridge/telemed-triage/internal/dataset"
	"github.com/healthbridge/telemed-triage/internal/doctors"
	"github.com/healthbridge/telemed-triage/pkg/logging"
)

// maxSurfacedMedicines bounds how many medicines appear in the prose
// summary of a suggestion.
const maxSurfacedMedicines = 3

// MedicineSuggestion pairs a matched condition with its catalog
// medicines.
type MedicineSuggestion struct {
	Condition string             `json:"condition"`
	Medicines []dataset.Medicine `json:"medicines"`
}

// ChatResponse is the composed payload for the chat-advice flow.
type ChatResponse struct {
	Success         bool                 `json:"success"`
	Message         string               `json:"message"`
	Complexity      string               `json:"complexity"`
	ShouldSeeDoctor bool                 `json:"shouldSeeDoctor"`
	Doctors         []doctors.Doctor     `json:"doctors"`
	Specialization  string               `json:"specialization"`
	Timestamp       time.Time            `json:"timestamp"`
	Medicines       []MedicineSuggestion `json:"medicines"`
}

// PrescriptionRequest carries the raw patient attributes of a
// prescription request.
type PrescriptionRequest struct {
	Symptoms    string `json:"symptoms"`
	Age         string `json:"age"`
	Weight      string `json:"weight"`
	Allergies   string `json:"allergies"`
	Medications string `json:"medications"`
}

// PrescriptionResponse is the composed payload for the prescription flow.
type PrescriptionResponse struct {
	Success      bool                 `json:"success"`
	Prescription string               `json:"prescription"`
	Doctor       *doctors.Doctor      `json:"doctor"`
	Medicines    []MedicineSuggestion `json:"medicines"`
	Complexity   string               `json:"complexity"`
	Timestamp    time.Time            `json:"timestamp"`
}

// Composer merges the classifier verdict, advice text, and medicine
// suggestions into the final payloads.
type Composer struct {
	classifier *SymptomClassifier
	advice     *AdviceGenerator
	matcher    *KeywordMatcher
	prescriber *PrescriptionGenerator
	directory  doctors.Directory
	logger     *logging.Logger
	now        func() time.Time
}

// NewComposer wires the pipeline components together.
func NewComposer(classifier *SymptomClassifier, advice *AdviceGenerator, matcher *KeywordMatcher, prescriber *PrescriptionGenerator, directory doctors.Directory, logger *logging.Logger) *Composer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Composer{
		classifier: classifier,
		advice:     advice,
		matcher:    matcher,
		prescriber: prescriber,
		directory:  directory,
		logger:     logger,
		now:        time.Now,
	}
}

// ComposeChat runs the chat-advice flow for one query. Advice generation
// and the local classification/matching have no data dependency, so they
// run concurrently; composition waits for both.
func (c *Composer) ComposeChat(ctx context.Context, query string) ChatResponse {
	adviceCh := make(chan AdviceResult, 1)
	go func() {
		adviceCh <- c.advice.Generate(ctx, query)
	}()

	classification := c.classifier.ProcessSymptom(ctx, query)
	suggestions := c.suggestionsFor(query)
	advice := <-adviceCh

	resp := ChatResponse{
		Success:         true,
		Complexity:      classification.Complexity,
		ShouldSeeDoctor: classification.ShouldSeeDoctor,
		Doctors:         classification.Doctors,
		Specialization:  classification.Specialization,
		Timestamp:       c.now().UTC(),
		Medicines:       suggestions,
	}
	if resp.Doctors == nil {
		resp.Doctors = []doctors.Doctor{}
	}

	if advice.Success {
		resp.Message = advice.Message
		if classification.Complexity == ComplexityComplex && len(classification.Doctors) > 0 {
			resp.Message += fmt.Sprintf("\n\n**Doctor Recommendation:** Based on your symptoms, I recommend consulting with a %s. Here are some available doctors:", classification.Specialization)
		}
	} else {
		resp.Message = classification.Message
	}

	if meds := formatMedicines(suggestions); meds != "" {
		resp.Message += meds
	}

	return resp
}

// ComposePrescription runs the prescription flow: classify, resolve a
// recommended doctor, generate the prescription, match medicines.
func (c *Composer) ComposePrescription(ctx context.Context, req PrescriptionRequest) PrescriptionResponse {
	symptoms := strings.TrimSpace(req.Symptoms)
	classification := c.classifier.ProcessSymptom(ctx, symptoms)

	specialization := classification.Specialization
	if specialization == "" {
		specialization = c.classifier.Specialization(symptoms)
	}

	doctor := c.resolveDoctor(ctx, classification, specialization)

	prescription := c.prescriber.Generate(ctx, PrescriptionInput{
		Symptoms:       symptoms,
		Age:            req.Age,
		Weight:         req.Weight,
		Allergies:      req.Allergies,
		Medications:    req.Medications,
		Complexity:     classification.Complexity,
		Specialization: specialization,
	})

	return PrescriptionResponse{
		Success:      true,
		Prescription: prescription,
		Doctor:       doctor,
		Medicines:    c.suggestionsFor(symptoms),
		Complexity:   classification.Complexity,
		Timestamp:    c.now().UTC(),
	}
}

// resolveDoctor picks the recommended doctor: the classifier's first
// complex-case candidate, else a specialization lookup, else a general
// practitioner, else nil.
func (c *Composer) resolveDoctor(ctx context.Context, classification ClassificationResult, specialization string) *doctors.Doctor {
	if classification.Complexity == ComplexityComplex && len(classification.Doctors) > 0 {
		doc := classification.Doctors[0]
		return &doc
	}
	if c.directory == nil {
		return nil
	}

	if doc := c.lookupOne(ctx, specialization); doc != nil {
		return doc
	}
	return c.lookupOne(ctx, "general|family|primary")
}

func (c *Composer) lookupOne(ctx context.Context, pattern string) *doctors.Doctor {
	docs, err := c.directory.FindBySpecialization(ctx, pattern, 1)
	if err != nil {
		c.logger.Error("doctor lookup failed", "pattern", pattern, "error", err)
		return nil
	}
	if len(docs) == 0 {
		return nil
	}
	return &docs[0]
}

// suggestionsFor maps matcher output onto suggestion payloads.
func (c *Composer) suggestionsFor(text string) []MedicineSuggestion {
	matched := c.matcher.Match(text)
	suggestions := make([]MedicineSuggestion, 0, len(matched))
	for _, entry := range matched {
		suggestions = append(suggestions, MedicineSuggestion{
			Condition: entry.Condition,
			Medicines: entry.Medicines,
		})
	}
	return suggestions
}

// formatMedicines renders the "Suggested Medicines" paragraph for the
// first matched condition, capped at three medicines.
func formatMedicines(suggestions []MedicineSuggestion) string {
	if len(suggestions) == 0 {
		return ""
	}
	first := suggestions[0]

	meds := first.Medicines
	if len(meds) > maxSurfacedMedicines {
		meds = meds[:maxSurfacedMedicines]
	}
	parts := make([]string, 0, len(meds))
	for _, m := range meds {
		desc := fmt.Sprintf("%s (%s, %s", m.Name, m.Dose, m.Frequency)
		if m.Timing != "" {
			desc += ", " + m.Timing
		}
		desc += ")"
		parts = append(parts, desc)
	}
	if len(parts) == 0 {
		return ""
	}

	return fmt.Sprintf("\n\n**Suggested Medicines (from dataset) for %s:** %s", first.Condition, strings.Join(parts, "; "))
}
