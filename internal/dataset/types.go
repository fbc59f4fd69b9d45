package dataset

import "strings"

// Medicine is a single over-the-counter suggestion. Fields are purely
// descriptive; a medicine has no identity beyond its position in the
// owning condition.
type Medicine struct {
	Name      string `json:"name"`
	Dose      string `json:"dose"`
	Frequency string `json:"frequency"`
	Timing    string `json:"timing,omitempty"`
}

// SymptomEntry is one row of the symptoms/advice catalog.
type SymptomEntry struct {
	Condition string   `json:"condition"`
	Symptoms  []string `json:"symptoms"`
	Advice    string   `json:"advice"`
}

// ConditionEntry is one row of the medicines catalog.
type ConditionEntry struct {
	Condition string     `json:"condition"`
	Medicines []Medicine `json:"medicines"`
}

// Catalog holds both reference catalogs. It is loaded once at process
// start and never mutated afterwards, so it is safe to share across
// requests without locking.
type Catalog struct {
	Symptoms   []SymptomEntry
	Conditions []ConditionEntry
}

// FindCondition looks up a medicines-catalog entry by name.
// Condition identity is case-insensitive.
func (c *Catalog) FindCondition(name string) (ConditionEntry, bool) {
	for _, entry := range c.Conditions {
		if strings.EqualFold(entry.Condition, name) {
			return entry, true
		}
	}
	return ConditionEntry{}, false
}

// Empty reports whether both catalogs are empty, which happens when the
// static storage was missing or corrupt at load time.
func (c *Catalog) Empty() bool {
	return len(c.Symptoms) == 0 && len(c.Conditions) == 0
}
