// Package searchterm tokenizes the filter strings typed into list views
//
//	client:acme !draft status:"" fix bug
//
// Tokens are separated by single spaces. A token may be scoped to a field with
// "field:term" and negated with a leading "!". Every input is valid; anything
// that does not fit the grammar is kept as literal text.
package searchterm

import "strings"

// Part is one space separated token
type Part struct {
	Field    string
	HasField bool
	Term     string
	Excluded bool
}

// SearchTerm is a parsed query, immutable once built
type SearchTerm struct {
	original string
	term     string
	parts    []Part
}

// Parse tokenizes raw
func Parse(raw string) SearchTerm {
	segments := strings.Split(raw, " ")
	st := SearchTerm{original: raw, parts: make([]Part, 0, len(segments))}

	free := make([]string, 0, len(segments))
	for _, seg := range segments {
		p := parsePart(seg)
		st.parts = append(st.parts, p)
		if !p.HasField {
			free = append(free, p.Term)
		}
	}
	st.term = strings.Join(free, " ")
	return st
}

func parsePart(seg string) Part {
	p := Part{Term: seg}
	if field, rest, ok := strings.Cut(seg, ":"); ok && rest != "" {
		p.Field, p.HasField = field, true
		p.Term = rest
		if rest == `""` {
			p.Term = ""
		}
	}
	if len(p.Term) > 1 && p.Term[0] == '!' {
		p.Term = p.Term[1:]
		p.Excluded = true
	}
	return p
}

// HasSearchTerm reports whether any free text is left once fields are taken out
func (s SearchTerm) HasSearchTerm() bool { return s.term != "" }

// Term is the free text: unscoped parts joined with single spaces
func (s SearchTerm) Term() string { return s.term }

// OriginalSearch is the input, verbatim
func (s SearchTerm) OriginalSearch() string { return s.original }

// String is the input, verbatim
func (s SearchTerm) String() string { return s.original }

// Parts returns a copy of the tokens in input order
func (s SearchTerm) Parts() []Part {
	out := make([]Part, len(s.parts))
	copy(out, s.parts)
	return out
}

// SearchFields maps each field to its term; a repeated field keeps the last one
func (s SearchTerm) SearchFields() map[string]string {
	out := make(map[string]string)
	for _, p := range s.parts {
		if p.HasField {
			out[p.Field] = p.Term
		}
	}
	return out
}
