package service

import (
	"context"
	"testing"

	"tallybook/internal/core/searchterm"
	"tallybook/internal/services/api/search/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var items = []domain.Item{
	{ID: "1", Text: "Fix login bug", Fields: map[string]string{"client": "ACME", "status": "open"}},
	{ID: "2", Text: "Draft invoice layout", Fields: map[string]string{"client": "acme", "status": "draft"}},
	{ID: "3", Text: "Fix export", Fields: map[string]string{"Client": "Globex"}},
}

func ids(out domain.FilterOutput) []string {
	var got []string
	for _, it := range out.Matches {
		got = append(got, it.ID)
	}
	return got
}

func TestParse(t *testing.T) {
	out, err := New().Parse(context.Background(), domain.ParseInput{Q: "client:acme !draft fix"})
	require.NoError(t, err)
	assert.Equal(t, "client:acme !draft fix", out.Original)
	assert.Equal(t, "draft fix", out.Term)
	assert.True(t, out.HasTerm)
	assert.Equal(t, map[string]string{"client": "acme"}, out.Fields)
	require.Len(t, out.Parts, 3)
	assert.Equal(t, domain.Part{Term: "draft", Excluded: true}, out.Parts[1])
}

func TestFilter(t *testing.T) {
	cases := map[string][]string{
		"":                       {"1", "2", "3"},
		"client:acme":            {"1", "2"},
		"client:acme !draft":     {"1"},
		"fix":                    {"1", "3"},
		"FIX client:globex":      {"3"},
		"client:!acme":           {"3"},
		"!client:acme":           nil,
		"status:\"\"":            {"3"},
		"fix  bug":               {"1"},
		"client:initech":         nil,
		"invoice client:!globex": {"2"},
	}
	for q, want := range cases {
		out, err := New().Filter(context.Background(), domain.FilterInput{Q: q, Items: items})
		require.NoError(t, err, q)
		assert.Equal(t, want, ids(out), q)
		assert.Equal(t, len(want), out.Total, q)
		assert.Equal(t, q, out.Query.Original)
	}
}

func TestFilter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Filter(ctx, domain.FilterInput{Q: "x", Items: items})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatches_BangAlone(t *testing.T) {
	// a lone "!" is literal text
	st := searchterm.Parse("!")
	assert.True(t, Matches(st, domain.Item{Text: "wow!"}))
	assert.False(t, Matches(st, domain.Item{Text: "wow"}))
}
