package doctors

import "context"

// Doctor is the projection of a directory record surfaced to patients.
// The triage pipeline only ever reads the directory.
type Doctor struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
	Hospital       string `json:"hospital"`
	Location       string `json:"location"`
}

// Directory looks up doctors by specialization. Pattern matching is
// case-insensitive and may be a regular expression (e.g.
// "general|family|primary").
type Directory interface {
	FindBySpecialization(ctx context.Context, pattern string, limit int) ([]Doctor, error)
}
