// Package tools holds the callable tool surface of the analysis service.
// Every tool takes a loosely typed inputs map and returns a structured
// output, a short log line, and an error.
package tools

import (
	"context"
	"sort"
)

type Tool interface {
	Name() string
	Execute(ctx context.Context, inputs map[string]any) (output any, logs string, err error)
}

type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: map[string]Tool{}}
}

func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.tools))
	for name := range r.tools {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
