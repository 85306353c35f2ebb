// Package service tokenizes filter strings and applies them to items
package service

import (
	"context"

	"tallybook/internal/core/searchterm"
	str "tallybook/internal/platform/strings"
	"tallybook/internal/services/api/search/domain"
)

// Service is the search contract
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct{}

// New returns a Svc
func New() *Svc { return &Svc{} }

// Parse tokenizes in.Q
func (s *Svc) Parse(_ context.Context, in domain.ParseInput) (domain.ParseOutput, error) {
	return toOutput(searchterm.Parse(in.Q)), nil
}

// Filter keeps the items Matches accepts
func (s *Svc) Filter(ctx context.Context, in domain.FilterInput) (domain.FilterOutput, error) {
	st := searchterm.Parse(in.Q)
	out := domain.FilterOutput{Query: toOutput(st), Matches: []domain.Item{}}
	for _, it := range in.Items {
		if err := ctx.Err(); err != nil {
			return domain.FilterOutput{}, err
		}
		if Matches(st, it) {
			out.Matches = append(out.Matches, it)
		}
	}
	out.Total = len(out.Matches)
	return out, nil
}

// Matches applies every token of st to it, case folded
//   - field:term requires the field to equal term, !field:term forbids it
//   - a free token must occur in the text, !token must not
//   - empty free tokens are ignored
func Matches(st searchterm.SearchTerm, it domain.Item) bool {
	for _, p := range st.Parts() {
		var hit bool
		if p.HasField {
			hit = str.FoldEqual(lookup(it.Fields, p.Field), p.Term)
		} else {
			if p.Term == "" {
				continue
			}
			hit = str.FoldContains(it.Text, p.Term)
		}
		if hit == p.Excluded {
			return false
		}
	}
	return true
}

// lookup finds field by caseless key
func lookup(fields map[string]string, field string) string {
	if v, ok := fields[field]; ok {
		return v
	}
	for k, v := range fields {
		if str.FoldEqual(k, field) {
			return v
		}
	}
	return ""
}

func toOutput(st searchterm.SearchTerm) domain.ParseOutput {
	parts := st.Parts()
	out := domain.ParseOutput{
		Original: st.OriginalSearch(),
		Term:     st.Term(),
		HasTerm:  st.HasSearchTerm(),
		Fields:   st.SearchFields(),
		Parts:    make([]domain.Part, len(parts)),
	}
	for i, p := range parts {
		out.Parts[i] = domain.Part{Field: p.Field, HasField: p.HasField, Term: p.Term, Excluded: p.Excluded}
	}
	return out
}
