package triage

import (
	"fmt"
	"strings"
	"time"
)

// adviceCharBudget bounds the generated advice passage.
const adviceCharBudget = 1600

// buildAdvicePrompt embeds the patient's verbatim query, the strict
// output contract, and the dataset grounding block.
func buildAdvicePrompt(query, datasetAdvice string) string {
	grounding := "(No dataset guidance found)"
	if datasetAdvice != "" {
		grounding = fmt.Sprintf("\"\"\"\n%s\n\"\"\"", datasetAdvice)
	}

	return fmt.Sprintf(`You are responding as a licensed clinician. A patient reports: %q.

STRICT RESPONSE REQUIREMENTS:
- Provide only clinically relevant information. Do not include any non-medical content, metadata, sources, or system notes.
- Do not diagnose or claim certainty. Use non-diagnostic language ("may be consistent with", "could be due to").
- Be concise, empathetic, and actionable.
- Structure the response with these headings only: Assessment, Self-care, Red flags, Next steps.
- Keep within %d characters total.

KNOWLEDGE BASE (use as guidance if relevant; do not quote verbatim):
%s

OUT-OF-SCOPE HANDLING:
If the patient's message is not about health, symptoms, conditions, risks, or medical self-care, respond EXACTLY with: %q and nothing else.

Now write the response.`, query, adviceCharBudget, grounding, OutOfScopeMessage)
}

// PrescriptionInput carries the patient attributes for prescription
// generation. Zero-value fields are normalized before prompting.
type PrescriptionInput struct {
	Symptoms       string
	Age            string
	Weight         string
	Allergies      string
	Medications    string
	Complexity     string
	Specialization string
}

// normalized fills placeholder values for unspecified attributes.
func (in PrescriptionInput) normalized() PrescriptionInput {
	out := in
	out.Symptoms = strings.TrimSpace(in.Symptoms)
	if out.Age == "" {
		out.Age = "Not specified"
	}
	if out.Weight == "" {
		out.Weight = "Not specified"
	}
	if out.Allergies == "" {
		out.Allergies = "None reported"
	}
	if out.Medications == "" {
		out.Medications = "None reported"
	}
	if out.Specialization == "" {
		out.Specialization = "General Practice"
	}
	return out
}

// PrescriptionDisclaimer must appear verbatim in every prescription,
// generated or templated.
const PrescriptionDisclaimer = "This is an AI-generated recommendation for informational purposes only."

func buildPrescriptionPrompt(in PrescriptionInput, now time.Time) string {
	in = in.normalized()
	currentDate := now.Format("January 2, 2006")

	return fmt.Sprintf(`You are a licensed medical professional generating a structured prescription.

PATIENT INFORMATION:
- Symptoms: %s
- Age: %s
- Weight: %s
- Known Allergies: %s
- Current Medications: %s
- Condition Complexity: %s
- Recommended Specialization: %s

REQUIRED OUTPUT FORMAT:
Generate a medical prescription in EXACTLY this format:

PRESCRIPTION RECOMMENDATION
Generated: %s

DIAGNOSIS: [Provide a professional medical assessment based on the symptoms]

MEDICATIONS:
• [Drug Name]: [Dosage & Duration]
  Instructions: [Specific instructions for taking the medication]

RECOMMENDATIONS (Self-care DOs):
• [What the patient SHOULD do 1]
• [What the patient SHOULD do 2]
• [What the patient SHOULD do 3]

AVOID (DON'Ts):
• [What the patient should AVOID 1]
• [What the patient should AVOID 2]

WARNINGS:
• [Important warning or red flag 1]
• [Important warning or red flag 2]

FOLLOW-UP:
• [When to revisit or consult doctor]

DISCLAIMER:
%s

IMPORTANT GUIDELINES:
1. Be clinically accurate and evidence-based
2. Consider patient's age, weight, allergies, and current medications
3. For complex conditions, emphasize the need for specialist consultation
4. Include appropriate warnings and red flags
5. Provide practical, actionable recommendations including clear DOs and DON'Ts
6. Use professional medical terminology
7. Keep medications appropriate for the condition described
8. Always include the disclaimer

Generate the prescription now:`,
		in.Symptoms, in.Age, in.Weight, in.Allergies, in.Medications,
		in.Complexity, in.Specialization, currentDate, PrescriptionDisclaimer)
}

// fallbackPrescription is the deterministic local template used when the
// external service is unavailable. It carries the same headings and the
// verbatim disclaimer so consumers cannot structurally distinguish it
// from a live answer.
func fallbackPrescription(in PrescriptionInput, now time.Time) string {
	currentDate := now.Format("January 2, 2006")

	return fmt.Sprintf(`PRESCRIPTION RECOMMENDATION
Generated: %s

DIAGNOSIS: Based on the symptoms described (%s), this appears to be a condition requiring medical evaluation.

MEDICATIONS:
• Symptom Management: As directed by healthcare provider
  Instructions: Follow dosage instructions carefully

RECOMMENDATIONS (Self-care DOs):
• Rest and maintain adequate hydration
• Monitor symptoms closely

AVOID (DON'Ts):
• Avoid self-medication without professional guidance

WARNINGS:
• Seek immediate medical attention if symptoms worsen
• Consult healthcare provider for proper diagnosis and treatment

FOLLOW-UP:
• Schedule appointment with healthcare provider within 24-48 hours

DISCLAIMER:
%s`, currentDate, strings.TrimSpace(in.Symptoms), PrescriptionDisclaimer)
}
