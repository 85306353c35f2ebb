package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"

	"tallybook/internal/core/version"
)

// SpecMutator adjusts the document before it is served
type SpecMutator func(spec map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// Register adds a mutator; modules call it when they register routes
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Reset drops every mutator, for tests
func Reset() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// Op documents one route relative to the /api/v1 server
type Op struct {
	Method  string
	Path    string
	Tag     string
	Summary string
	Body    bool
}

// Document registers a mutator that adds ops to the paths object
func Document(ops ...Op) {
	Register(func(spec map[string]any) {
		paths := child(spec, "paths")
		for _, op := range ops {
			item := child(paths, op.Path)
			entry := map[string]any{
				"summary": op.Summary,
				"tags":    []string{op.Tag},
				"responses": map[string]any{
					"200":     map[string]any{"description": "ok"},
					"default": map[string]any{"$ref": "#/components/responses/Error"},
				},
			}
			if op.Body {
				entry["requestBody"] = map[string]any{
					"required": true,
					"content":  map[string]any{"application/json": map[string]any{"schema": map[string]any{"type": "object"}}},
				}
			}
			item[strings.ToLower(op.Method)] = entry
		}
	})
}

// Build returns the current document
func Build() map[string]any {
	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "tallybook API",
			"version": version.Info().Version,
		},
		"servers": []any{map[string]any{"url": "/api/v1"}},
		"paths":   map[string]any{},
	}
	addErrorEnvelope(spec)

	mu.RLock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.RUnlock()
	for _, m := range ms {
		m(spec)
	}
	return spec
}

// Paths lists the documented paths in order
func Paths(spec map[string]any) []string {
	paths, _ := spec["paths"].(map[string]any)
	out := make([]string, 0, len(paths))
	for p := range paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func serveDocJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(Build())
}

// addErrorEnvelope mirrors the runtime error wire
func addErrorEnvelope(spec map[string]any) {
	comps := child(spec, "components")
	child(comps, "schemas")["ErrorResponse"] = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
	}
	child(comps, "responses")["Error"] = map[string]any{
		"description": "error envelope",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			},
		},
	}
}

func child(m map[string]any, key string) map[string]any {
	if c, ok := m[key].(map[string]any); ok {
		return c
	}
	c := map[string]any{}
	m[key] = c
	return c
}
