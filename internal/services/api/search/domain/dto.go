// Package domain holds the search DTOs and service contract
package domain

import "context"

// ParseInput is a raw filter string
type ParseInput struct {
	Q string `json:"q" validate:"max=512" example:"client:acme !draft fix"`
}

// Part is one token of the query
type Part struct {
	Field    string `json:"field,omitempty" example:"client"`
	HasField bool   `json:"has_field"`
	Term     string `json:"term" example:"acme"`
	Excluded bool   `json:"excluded"`
}

// ParseOutput is the tokenized query
type ParseOutput struct {
	Original string            `json:"original"`
	Term     string            `json:"term"`
	HasTerm  bool              `json:"has_term"`
	Fields   map[string]string `json:"fields"`
	Parts    []Part            `json:"parts"`
}

// Item is something a query can be applied to
type Item struct {
	ID     string            `json:"id" validate:"max=128"`
	Text   string            `json:"text" validate:"max=4096"`
	Fields map[string]string `json:"fields,omitempty"`
}

// FilterInput applies Q to Items
type FilterInput struct {
	Q     string `json:"q" validate:"max=512"`
	Items []Item `json:"items" validate:"max=1000,dive"`
}

// FilterOutput lists the matching items in input order
type FilterOutput struct {
	Query   ParseOutput `json:"query"`
	Matches []Item      `json:"matches"`
	Total   int         `json:"total"`
}

// ServicePort is the search contract
type ServicePort interface {
	Parse(ctx context.Context, in ParseInput) (ParseOutput, error)
	Filter(ctx context.Context, in FilterInput) (FilterOutput, error)
}
