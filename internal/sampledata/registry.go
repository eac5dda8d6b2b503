package sampledata

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownType is returned when no registered plugin answers a step type.
	ErrUnknownType = errors.New("unknown sample data type")
	// ErrStepOutOfRange is returned for steps outside 1..Steps of the plugin.
	ErrStepOutOfRange = errors.New("step out of range")
)

// Registry dispatches step requests to plugins by name.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]*Plugin
}

// NewRegistry returns a Registry holding plugins.
func NewRegistry(plugins ...*Plugin) *Registry {
	r := &Registry{plugins: make(map[string]*Plugin)}
	for _, p := range plugins {
		r.Register(p)
	}
	return r
}

// Register adds p, replacing any plugin with the same name.
func (r *Registry) Register(p *Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[p.settings.Name] = p
}

// Overviews returns the overview of every plugin, ordered by name.
func (r *Registry) Overviews() []Overview {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Overview, 0, len(r.plugins))
	for _, p := range r.plugins {
		out = append(out, p.Overview())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the plugin registered under name.
func (r *Registry) Lookup(name string) (*Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// Apply runs req on the plugin it names. Step failures are reported in the
// Response; only an unknown type or step number returns an error.
func (r *Registry) Apply(ctx context.Context, req StepRequest, state UserState) (Response, error) {
	p, ok := r.Lookup(req.Type)
	if !ok {
		return Response{}, fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}
	if req.Step < 1 || req.Step > p.settings.Steps {
		return Response{}, fmt.Errorf("%w: %d not in 1..%d", ErrStepOutOfRange, req.Step, p.settings.Steps)
	}
	resp, _ := p.ApplyStep(ctx, req, state)
	return resp, nil
}
