package triage

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthbridge/telemed-triage/internal/doctors"
	"github.com/healthbridge/telemed-triage/pkg/logging"
)

// Complexity tiers. Complex complaints carry a doctor recommendation.
const (
	ComplexityBasic   = "basic"
	ComplexityComplex = "complex"
)

// DefaultSpecialization is used when no rule claims the complaint.
const DefaultSpecialization = "General Physician"

// ClassificationResult is the classifier's verdict for one query. It is
// produced fresh per query and never mutated after construction.
type ClassificationResult struct {
	Complexity      string
	ShouldSeeDoctor bool
	Specialization  string
	Doctors         []doctors.Doctor
	Message         string
}

// specializationRule maps complaint keywords to the specialist who
// handles them. First match wins.
type specializationRule struct {
	keywords       []string
	specialization string
}

var specializationRules = []specializationRule{
	{[]string{"chest pain", "heart", "palpitation", "shortness of breath", "breathless"}, "Cardiologist"},
	{[]string{"seizure", "stroke", "paralysis", "numbness", "memory loss", "severe headache"}, "Neurologist"},
	{[]string{"breathing", "asthma", "wheez", "persistent cough"}, "Pulmonologist"},
	{[]string{"vomiting blood", "jaundice", "liver", "abdominal", "stomach"}, "Gastroenterologist"},
	{[]string{"fracture", "joint", "bone", "arthritis", "back pain"}, "Orthopedist"},
	{[]string{"rash", "acne", "eczema", "psoriasis", "skin"}, "Dermatologist"},
	{[]string{"anxiety", "depression", "panic", "suicidal"}, "Psychiatrist"},
	{[]string{"pregnan", "period", "menstrual", "pelvic"}, "Gynecologist"},
	{[]string{"ear", "nose", "throat", "sinus", "hearing"}, "ENT Specialist"},
	{[]string{"eye", "vision", "blurred"}, "Ophthalmologist"},
	{[]string{"urination", "urinary", "kidney"}, "Urologist"},
	{[]string{"diabetes", "thyroid", "blood sugar"}, "Endocrinologist"},
}

// complexMarkers escalate a complaint to the complex tier. The severity
// model is deliberately coarse: it must be deterministic and err toward
// recommending a doctor.
var complexMarkers = []string{
	"severe", "intense", "unbearable", "worst",
	"chest pain", "shortness of breath", "difficulty breathing", "can't breathe",
	"unconscious", "fainted", "seizure", "stroke", "paralysis", "numbness",
	"bleeding", "blood in", "coughing blood", "vomiting blood",
	"high fever", "stiff neck", "confusion", "suicidal",
}

const basicFallbackMessage = "Based on your symptoms, this appears to be a manageable condition. Rest, stay hydrated, and monitor how you feel. If symptoms persist beyond 2-3 days or get worse, please consult a healthcare provider."

// SymptomClassifier is a deterministic rule engine producing a severity
// verdict for free-text symptom descriptions. The only I/O it performs is
// the doctor directory lookup for complex cases.
type SymptomClassifier struct {
	directory   doctors.Directory
	lookupLimit int
	logger      *logging.Logger
}

// NewSymptomClassifier creates a classifier. The directory may be nil,
// in which case complex cases carry no candidate doctors.
func NewSymptomClassifier(directory doctors.Directory, lookupLimit int, logger *logging.Logger) *SymptomClassifier {
	if lookupLimit <= 0 {
		lookupLimit = 3
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SymptomClassifier{
		directory:   directory,
		lookupLimit: lookupLimit,
		logger:      logger,
	}
}

// ProcessSymptom classifies the text and, for complex complaints,
// resolves candidate doctors from the directory. Identical text always
// yields the same tier and specialization.
func (c *SymptomClassifier) ProcessSymptom(ctx context.Context, text string) ClassificationResult {
	q := strings.ToLower(strings.TrimSpace(text))

	specialization := specializationFor(q)
	complexity := ComplexityBasic
	if hasComplexMarker(q) {
		complexity = ComplexityComplex
	}

	result := ClassificationResult{
		Complexity:     complexity,
		Specialization: specialization,
	}

	if complexity == ComplexityComplex {
		result.ShouldSeeDoctor = true
		result.Message = fmt.Sprintf("Your symptoms may need professional evaluation. I recommend consulting a %s promptly. If symptoms are sudden or worsening, seek emergency care.", specialization)
		result.Doctors = c.lookupDoctors(ctx, specialization)
	} else {
		result.Message = basicFallbackMessage
	}

	return result
}

// Specialization recovers a specialization from symptom text alone.
// It is used as a fallback specialization source when the full
// classification is not otherwise needed.
func (c *SymptomClassifier) Specialization(text string) string {
	return specializationFor(strings.ToLower(strings.TrimSpace(text)))
}

func specializationFor(q string) string {
	if q == "" {
		return DefaultSpecialization
	}
	for _, rule := range specializationRules {
		for _, k := range rule.keywords {
			if strings.Contains(q, k) {
				return rule.specialization
			}
		}
	}
	return DefaultSpecialization
}

func hasComplexMarker(q string) bool {
	for _, marker := range complexMarkers {
		if strings.Contains(q, marker) {
			return true
		}
	}
	return false
}

// lookupDoctors resolves candidate specialists. Directory failures
// degrade to an empty candidate list; they never fail the request.
func (c *SymptomClassifier) lookupDoctors(ctx context.Context, specialization string) []doctors.Doctor {
	if c.directory == nil {
		return nil
	}
	docs, err := c.directory.FindBySpecialization(ctx, specialization, c.lookupLimit)
	if err != nil {
		c.logger.Error("doctor directory lookup failed",
			"specialization", specialization,
			"error", err,
		)
		return nil
	}
	return docs
}
