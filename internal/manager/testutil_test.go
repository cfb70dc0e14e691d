package manager

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeGenerator is an in-memory llm.Generator used for tests.
type fakeGenerator struct {
	mu      sync.Mutex
	out     string
	err     error
	panicV  any
	prompts []string
	// when non-nil, Generate blocks until release is closed
	release chan struct{}
	started chan struct{}
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	release, started := f.release, f.started
	f.mu.Unlock()
	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.panicV != nil {
		panic(f.panicV)
	}
	return f.out, f.err
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

var errRejected = errors.New("ValidationException: model rejected request")

// fakeClock is a settable clock.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestManager(t *testing.T, gen *fakeGenerator) (*Manager, *MemoryPublisher, *fakeClock) {
	t.Helper()
	pub := NewMemoryPublisher()
	clk := newFakeClock()
	cfg := ManagerConfig{ModelID: "amazon.titan-text-lite-v1", Region: "us-east-1", Publisher: pub, Now: clk.Now}
	if gen != nil {
		cfg.Generator = gen
	}
	return NewWithConfig(cfg), pub, clk
}

// walkToLastStep advances a fresh session through the first three steps.
func walkToLastStep(t *testing.T, m *Manager, id string) {
	t.Helper()
	for _, v := range []string{"Movies", "Inception", "Sci-Fi"} {
		if _, err := m.Advance(id, v); err != nil {
			t.Fatalf("advance %q: %v", v, err)
		}
	}
}
