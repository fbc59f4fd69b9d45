package triage

import (
	"regexp"
	"strings"

	"github.com/healthbridge/telemed-triage/internal/dataset"
	"github.com/healthbridge/telemed-triage/internal/observability/metrics"
)

// maxOverlapMatches caps the fallback scan so a vague query cannot flood
// the composed message with conditions.
const maxOverlapMatches = 2

// maxAdvicePassages caps how many distinct dataset advice passages are
// merged for grounding.
const maxAdvicePassages = 3

// keywordRule maps trigger keywords to a medicines-catalog condition.
type keywordRule struct {
	keywords  []string
	condition string
}

// keywordRules is evaluated in order; the first rule with any keyword
// present in the text wins. Order encodes priority, so more specific
// complaints sit above generic ones.
var keywordRules = []keywordRule{
	{[]string{"fever", "temperature"}, "Fever"},
	{[]string{"cold", "runny nose", "sneeze"}, "Common Cold"},
	{[]string{"headache", "migraine", "head pain"}, "Headache/Migraine"},
	{[]string{"cough", "phlegm"}, "Cough"},
	{[]string{"sore throat", "throat pain"}, "Sore Throat"},
	{[]string{"stomach", "indigestion", "acidity", "gastric"}, "Stomach Pain/Indigestion"},
	{[]string{"diarrhea", "loose motion"}, "Diarrhea"},
	{[]string{"constipation"}, "Constipation"},
	{[]string{"vomit", "nausea"}, "Vomiting/Nausea"},
	{[]string{"dizzy", "vertigo", "lightheaded"}, "Dizziness/Vertigo"},
	{[]string{"fatigue", "body ache", "weakness"}, "Fatigue/Body Ache"},
	{[]string{"back pain"}, "Back Pain"},
	{[]string{"joint pain", "arthritis", "knee"}, "Joint Pain/Arthritis"},
	{[]string{"muscle pain", "myalgia"}, "Muscle Pain"},
	{[]string{"eye", "itchy eyes", "red eyes"}, "Eye Irritation/Allergy"},
	{[]string{"ear pain", "earache"}, "Ear Pain"},
	{[]string{"tooth", "toothache"}, "Toothache"},
	{[]string{"gum bleed"}, "Gum Bleeding"},
	{[]string{"rash", "allergy", "itching"}, "Skin Rash/Allergy"},
	{[]string{"acne", "pimple"}, "Acne"},
	{[]string{"sneeze", "allergic rhinitis", "itchy nose"}, "Allergic Rhinitis"},
	{[]string{"asthma", "wheeze"}, "Asthma (mild)"},
	{[]string{"burning urination", "urinary pain", "uti"}, "UTI Symptoms (burning urination)"},
	{[]string{"frequent urination"}, "Frequent Urination (non-urgent)"},
	{[]string{"period pain", "dysmenorrhea", "cramps"}, "Period Pain (Dysmenorrhea)"},
	{[]string{"irregular period"}, "Irregular Periods (symptomatic)"},
	{[]string{"pregnancy", "morning sickness", "nausea"}, "Pregnancy Nausea"},
	{[]string{"insomnia", "sleep"}, "Insomnia (short-term)"},
	{[]string{"anxiety"}, "Anxiety (mild)"},
	{[]string{"depression"}, "Depression (supportive)"},
	{[]string{"low blood pressure", "hypotension", "lightheaded"}, "Hypotension (supportive)"},
	{[]string{"anemia", "low hemoglobin"}, "Anemia (iron deficiency)"},
	{[]string{"flu", "influenza"}, "Flu/Influenza"},
	{[]string{"food poisoning"}, "Food Poisoning (mild)"},
	{[]string{"sunburn"}, "Sunburn"},
	{[]string{"heat exhaustion", "heat stroke"}, "Heat Exhaustion (supportive)"},
	{[]string{"dehydration"}, "Dehydration (mild)"},
	{[]string{"allergic reaction", "hives", "swelling"}, "Allergic Reaction (mild)"},
}

// conditionWordSplit breaks a condition name into scan words. Matching is
// substring-based on purpose: "ear" matching inside "early" is a known
// recall/precision trade-off carried over from the existing product
// behavior, not a defect.
var conditionWordSplit = regexp.MustCompile(`[\s/()]+`)

// KeywordMatcher maps free-text symptom descriptions onto reference
// conditions using the priority table first and a bounded overlap scan of
// the catalog second.
type KeywordMatcher struct {
	catalog *dataset.Catalog
	metrics *metrics.TriageMetrics
}

// NewKeywordMatcher creates a matcher over the shared read-only catalog.
func NewKeywordMatcher(catalog *dataset.Catalog, m *metrics.TriageMetrics) *KeywordMatcher {
	if catalog == nil {
		catalog = &dataset.Catalog{}
	}
	return &KeywordMatcher{catalog: catalog, metrics: m}
}

// Match returns the conditions matched by the text, possibly none.
// Identical input always yields an identical ordered result.
func (m *KeywordMatcher) Match(text string) []dataset.ConditionEntry {
	q := strings.ToLower(text)
	if strings.TrimSpace(q) == "" {
		return nil
	}

	if name, ok := matchKeywordTable(q); ok {
		if entry, found := m.catalog.FindCondition(name); found {
			m.metrics.ObserveMatch("table")
			return []dataset.ConditionEntry{entry}
		}
		// Table hit without a catalog entry falls through to the scan.
	}

	matched := m.overlapScan(q)
	if len(matched) > 0 {
		m.metrics.ObserveMatch("overlap")
	} else {
		m.metrics.ObserveMatch("none")
	}
	return matched
}

// matchKeywordTable applies the priority table: first rule with any
// keyword appearing as a substring of the text wins.
func matchKeywordTable(q string) (string, bool) {
	for _, rule := range keywordRules {
		for _, k := range rule.keywords {
			if strings.Contains(q, k) {
				return rule.condition, true
			}
		}
	}
	return "", false
}

// overlapScan walks the catalog in dataset order and collects conditions
// whose name shares a word with the text, stopping at maxOverlapMatches.
func (m *KeywordMatcher) overlapScan(q string) []dataset.ConditionEntry {
	var matched []dataset.ConditionEntry
	for _, entry := range m.catalog.Conditions {
		name := strings.ToLower(entry.Condition)
		for _, word := range conditionWordSplit.Split(name, -1) {
			if word != "" && strings.Contains(q, word) {
				matched = append(matched, entry)
				break
			}
		}
		if len(matched) >= maxOverlapMatches {
			break
		}
	}
	return matched
}

// AdviceFor merges up to three distinct advice passages from symptom
// entries whose keywords contain the query. The result grounds the
// generated advice and doubles as the dataset fallback tier; empty string
// means no grounding exists.
func (m *KeywordMatcher) AdviceFor(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}

	var passages []string
	for _, entry := range m.catalog.Symptoms {
		if !symptomContains(entry.Symptoms, q) {
			continue
		}
		if entry.Advice == "" || containsString(passages, entry.Advice) {
			continue
		}
		passages = append(passages, entry.Advice)
		if len(passages) >= maxAdvicePassages {
			break
		}
	}
	return strings.Join(passages, "\n\n")
}

func symptomContains(symptoms []string, q string) bool {
	for _, s := range symptoms {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
