package doctors

import (
	"context"
	"fmt"
	"regexp"
	"sync"
)

// InMemoryDirectory holds a fixed set of doctors. Used in tests and when
// no database is configured.
type InMemoryDirectory struct {
	mu      sync.RWMutex
	doctors []Doctor
}

// NewInMemoryDirectory creates a directory seeded with the given doctors.
func NewInMemoryDirectory(doctors ...Doctor) *InMemoryDirectory {
	return &InMemoryDirectory{doctors: doctors}
}

// FindBySpecialization matches specializations against the pattern,
// case-insensitively, mirroring the Postgres regex lookup.
func (d *InMemoryDirectory) FindBySpecialization(ctx context.Context, pattern string, limit int) ([]Doctor, error) {
	if limit <= 0 {
		limit = 1
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("doctors: invalid specialization pattern: %w", err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []Doctor
	for _, doc := range d.doctors {
		if re.MatchString(doc.Specialization) {
			out = append(out, doc)
			if len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

// Add appends a doctor to the directory.
func (d *InMemoryDirectory) Add(doc Doctor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.doctors = append(d.doctors, doc)
}
