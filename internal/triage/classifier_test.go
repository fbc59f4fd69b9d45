package triage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthbridge/telemed-triage/internal/doctors"
)

func TestProcessSymptomComplexWithDoctors(t *testing.T) {
	dir := doctors.NewInMemoryDirectory(
		doctors.Doctor{Name: "Dr. Rao", Specialization: "Cardiologist", Hospital: "City Heart Center"},
		doctors.Doctor{Name: "Dr. Mehta", Specialization: "Cardiologist", Hospital: "General Hospital"},
		doctors.Doctor{Name: "Dr. Iyer", Specialization: "Dermatologist"},
	)
	c := NewSymptomClassifier(dir, 3, nil)

	result := c.ProcessSymptom(context.Background(), "severe chest pain and shortness of breath")

	assert.Equal(t, ComplexityComplex, result.Complexity)
	assert.True(t, result.ShouldSeeDoctor)
	assert.Equal(t, "Cardiologist", result.Specialization)
	assert.Contains(t, result.Message, "Cardiologist")
	require.Len(t, result.Doctors, 2)
	assert.Equal(t, "Dr. Rao", result.Doctors[0].Name)
}

func TestProcessSymptomBasic(t *testing.T) {
	c := NewSymptomClassifier(nil, 3, nil)

	result := c.ProcessSymptom(context.Background(), "mild runny nose since yesterday")

	assert.Equal(t, ComplexityBasic, result.Complexity)
	assert.False(t, result.ShouldSeeDoctor)
	assert.Empty(t, result.Doctors)
	assert.Equal(t, basicFallbackMessage, result.Message)
}

func TestProcessSymptomSpecializationRules(t *testing.T) {
	c := NewSymptomClassifier(nil, 3, nil)

	tests := []struct {
		text string
		want string
	}{
		{"heart palpitations at night", "Cardiologist"},
		{"sudden numbness in my left arm", "Neurologist"},
		{"persistent cough for two weeks", "Pulmonologist"},
		{"sharp abdominal cramps", "Gastroenterologist"},
		{"twisted my ankle, possible fracture", "Orthopedist"},
		{"itchy skin rash on both arms", "Dermatologist"},
		{"panic attacks at work", "Psychiatrist"},
		{"painful periods every month", "Gynecologist"},
		{"blocked sinus and ear pressure", "ENT Specialist"},
		{"blurred vision in one eye", "Ophthalmologist"},
		{"burning urination", "Urologist"},
		{"blood sugar keeps spiking", "Endocrinologist"},
		{"just feeling tired", DefaultSpecialization},
		{"", DefaultSpecialization},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Specialization(tt.text))
		})
	}
}

func TestProcessSymptomRuleOrderResolvesOverlap(t *testing.T) {
	c := NewSymptomClassifier(nil, 3, nil)

	// "chest pain" and "breathing" both appear; the cardiac rule sits
	// first in the table and wins.
	assert.Equal(t, "Cardiologist", c.Specialization("chest pain and trouble breathing"))
}

func TestProcessSymptomComplexMarkers(t *testing.T) {
	c := NewSymptomClassifier(nil, 3, nil)

	complex := []string{
		"severe back pain",
		"high fever and stiff neck",
		"coughing blood this morning",
		"my father fainted twice today",
		"unbearable toothache",
	}
	for _, text := range complex {
		t.Run(text, func(t *testing.T) {
			result := c.ProcessSymptom(context.Background(), text)
			assert.Equal(t, ComplexityComplex, result.Complexity)
			assert.True(t, result.ShouldSeeDoctor)
		})
	}

	basic := []string{
		"slight fever since evening",
		"a dull headache",
		"runny nose and sneezing",
	}
	for _, text := range basic {
		t.Run(text, func(t *testing.T) {
			result := c.ProcessSymptom(context.Background(), text)
			assert.Equal(t, ComplexityBasic, result.Complexity)
			assert.False(t, result.ShouldSeeDoctor)
		})
	}
}

func TestProcessSymptomIsDeterministic(t *testing.T) {
	c := NewSymptomClassifier(nil, 3, nil)

	first := c.ProcessSymptom(context.Background(), "severe chest pain")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.ProcessSymptom(context.Background(), "severe chest pain"))
	}
}

func TestProcessSymptomDirectoryFailureDegrades(t *testing.T) {
	dir := &recordingDirectory{failWith: errDirectoryDown}
	c := NewSymptomClassifier(dir, 3, nil)

	result := c.ProcessSymptom(context.Background(), "severe chest pain")

	assert.Equal(t, ComplexityComplex, result.Complexity)
	assert.True(t, result.ShouldSeeDoctor)
	assert.Empty(t, result.Doctors)
	assert.Equal(t, []string{"Cardiologist"}, dir.patterns)
}

func TestProcessSymptomHonorsLookupLimit(t *testing.T) {
	dir := doctors.NewInMemoryDirectory(
		doctors.Doctor{Name: "Dr. A", Specialization: "Cardiologist"},
		doctors.Doctor{Name: "Dr. B", Specialization: "Cardiologist"},
		doctors.Doctor{Name: "Dr. C", Specialization: "Cardiologist"},
	)
	c := NewSymptomClassifier(dir, 2, nil)

	result := c.ProcessSymptom(context.Background(), "chest pain that won't stop, severe")
	assert.Len(t, result.Doctors, 2)
}
