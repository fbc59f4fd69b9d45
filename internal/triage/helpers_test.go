package triage

import (
	"context"
	"errors"

	"github.com/healthbridge/telemed-triage/internal/dataset"
	"github.com/healthbridge/telemed-triage/internal/doctors"
)

// stubLLMClient returns a fixed response and records what it was asked.
type stubLLMClient struct {
	resp    LLMResponse
	err     error
	calls   int
	lastReq LLMRequest
}

func (s *stubLLMClient) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	s.calls++
	s.lastReq = req
	return s.resp, s.err
}

// recordingDirectory wraps an in-memory directory and records lookup
// patterns in call order.
type recordingDirectory struct {
	inner    doctors.Directory
	patterns []string
	failWith error
}

func (d *recordingDirectory) FindBySpecialization(ctx context.Context, pattern string, limit int) ([]doctors.Doctor, error) {
	d.patterns = append(d.patterns, pattern)
	if d.failWith != nil {
		return nil, d.failWith
	}
	return d.inner.FindBySpecialization(ctx, pattern, limit)
}

// mapAdviceCache is an in-process AdviceCache for tests.
type mapAdviceCache struct {
	entries map[string]string
	gets    int
	sets    int
}

func newMapAdviceCache() *mapAdviceCache {
	return &mapAdviceCache{entries: map[string]string{}}
}

func (c *mapAdviceCache) Get(ctx context.Context, query string) (string, bool) {
	c.gets++
	val, ok := c.entries[query]
	return val, ok
}

func (c *mapAdviceCache) Set(ctx context.Context, query, message string) {
	c.sets++
	c.entries[query] = message
}

var errDirectoryDown = errors.New("directory unavailable")

// testCatalog loads the embedded reference catalogs.
func testCatalog() *dataset.Catalog {
	return dataset.Load("", "", nil)
}
