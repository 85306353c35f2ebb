// Package strings holds string helpers shared across layers
package strings

import (
	std "strings"

	"golang.org/x/text/cases"
)

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s, panicking with "<name> is required" when s is blank
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a route prefix to "/x" form and panics on the root
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Fold returns s case folded for caseless comparison
func Fold(s string) string { return cases.Fold().String(s) }

// FoldEqual reports whether a and b are equal under case folding
func FoldEqual(a, b string) bool { return Fold(a) == Fold(b) }

// FoldContains reports whether sub occurs in s under case folding
func FoldContains(s, sub string) bool { return std.Contains(Fold(s), Fold(sub)) }

// SQLNull maps a blank string to a NULL query argument
func SQLNull(s string) any {
	if std.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// Deref returns *ps, or "" for nil
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// Ptr returns &s, or nil for ""
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
