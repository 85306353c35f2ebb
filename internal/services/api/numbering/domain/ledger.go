// Package domain holds the numbering contracts: the ledger of issued numbers,
// request DTOs and the service port
package domain

import (
	"context"
	"time"
)

// Issued is one number handed out
type Issued struct {
	ID             string    `json:"id" yaml:"id"`
	Format         string    `json:"format" yaml:"format"`
	Number         string    `json:"number" yaml:"number"`
	Customer       string    `json:"customer,omitempty" yaml:"customer,omitempty"`
	CustomerNumber string    `json:"customer_number,omitempty" yaml:"customer_number,omitempty"`
	IssuedAt       time.Time `json:"issued_at" yaml:"issued_at"`
}

// Scope selects which issued numbers a counter token counts
type Scope struct {
	// Format is the format text the numbers were issued under; empty means any
	Format string
	// Since is inclusive; zero means from the beginning
	Since time.Time
	// ByCustomer restricts the count to Customer
	ByCustomer bool
	Customer   string
}

// Includes reports whether rec falls inside s
func (s Scope) Includes(rec Issued) bool {
	if s.Format != "" && rec.Format != s.Format {
		return false
	}
	if !s.Since.IsZero() && rec.IssuedAt.Before(s.Since) {
		return false
	}
	return !s.ByCustomer || rec.Customer == s.Customer
}

// Counter counts issued numbers
type Counter interface {
	Count(ctx context.Context, s Scope) (int, error)
}

// Ledger counts and records issued numbers
// Append must reject a number that was already issued
type Ledger interface {
	Counter
	Append(ctx context.Context, rec Issued) error
}

// Book is a Ledger that can hold an exclusive section per key, so that the
// count read while computing a number and its Append cannot interleave with
// another issuer of the same format
type Book interface {
	Ledger
	Locked(ctx context.Context, key string, fn func(l Ledger) error) error
}
