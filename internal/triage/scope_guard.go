package triage

import "strings"

// OutOfScopeMessage is the fixed sentence returned for non-medical
// queries. The generation prompt instructs the model to answer with this
// exact sentence too, so callers can rely on it verbatim.
const OutOfScopeMessage = "This question is outside my medical scope. Please ask about health symptoms, conditions, or care."

// nonMedicalTriggers short-circuit clearly non-medical prompts before any
// external call is made. Matching is substring-based on the lowercased
// query; "java " keeps its trailing space so jaw complaints still pass.
var nonMedicalTriggers = []string{
	"capital of", "who is", "what is node", "what is javascript", "programming",
	"python", "java ", "c++", "react", "football", "cricket", "movie", "song",
	"weather", "stock", "bitcoin", "crypto", "country", "president",
	"prime minister", "capital city",
}

// IsOutOfScope reports whether the query trips the non-medical guard.
func IsOutOfScope(query string) bool {
	q := strings.ToLower(query)
	for _, trigger := range nonMedicalTriggers {
		if strings.Contains(q, trigger) {
			return true
		}
	}
	return false
}
