package service

import (
	"context"
	"sort"
	"time"

	"tallybook/internal/core/numberpattern"
	perr "tallybook/internal/platform/errors"
	ptime "tallybook/internal/platform/time"
	"tallybook/internal/services/api/numbering/domain"
)

type period uint8

const (
	allTime period = iota
	thisYear
	thisMonth
	thisDay
)

type counterToken struct {
	per        period
	byCustomer bool
}

var counterTokens = map[string]counterToken{
	"cc":   {allTime, false},
	"ccy":  {thisYear, false},
	"ccm":  {thisMonth, false},
	"ccd":  {thisDay, false},
	"ccc":  {allTime, true},
	"cccy": {thisYear, true},
	"cccm": {thisMonth, true},
	"cccd": {thisDay, true},
}

var dateTokens = map[string]string{
	"Y":    "2006",
	"y":    "06",
	"M":    "01",
	"m":    "1",
	"D":    "02",
	"d":    "2",
	"date": "060102",
}

// Tokens lists every base InvoiceTokens resolves, sorted
func Tokens() []string {
	out := make([]string, 0, len(counterTokens)+len(dateTokens)+2)
	for k := range counterTokens {
		out = append(out, k)
	}
	for k := range dateTokens {
		out = append(out, k)
	}
	out = append(out, "cname", "cnumber")
	sort.Strings(out)
	return out
}

// InvoiceTokens resolves invoice directives
// dates come from Now and ignore the seed, counters are the number of
// matching ledger entries plus the seed, and anything unknown is left as written
type InvoiceTokens struct {
	Counter        domain.Counter
	Format         string
	Customer       string
	CustomerNumber string
	Now            time.Time
}

// Resolve implements numberpattern.Strategy
func (s InvoiceTokens) Resolve(ctx context.Context, original, base string, seed int) (numberpattern.Value, error) {
	if layout, ok := dateTokens[base]; ok {
		return numberpattern.StringValue(s.now().Format(layout)), nil
	}
	if ct, ok := counterTokens[base]; ok {
		return s.count(ctx, ct, seed)
	}
	switch base {
	case "cname":
		return numberpattern.StringValue(s.Customer), nil
	case "cnumber":
		return numberpattern.StringValue(s.CustomerNumber), nil
	}
	return numberpattern.StringValue(original), nil
}

func (s InvoiceTokens) count(ctx context.Context, ct counterToken, seed int) (numberpattern.Value, error) {
	if ct.byCustomer && s.Customer == "" {
		return numberpattern.Value{}, perr.WithField(perr.Validationf("customer counters need a customer"), "customer")
	}
	if s.Counter == nil {
		return numberpattern.Value{}, perr.Internalf("no counter configured")
	}
	scope := domain.Scope{Format: s.Format, ByCustomer: ct.byCustomer, Customer: s.Customer}
	now := s.now()
	switch ct.per {
	case thisYear:
		scope.Since = ptime.StartOfYear(now)
	case thisMonth:
		scope.Since = ptime.StartOfMonth(now)
	case thisDay:
		scope.Since = ptime.StartOfDay(now)
	}
	n, err := s.Counter.Count(ctx, scope)
	if err != nil {
		return numberpattern.Value{}, err
	}
	return numberpattern.IntValue(int64(n) + int64(seed)), nil
}

func (s InvoiceTokens) now() time.Time {
	if s.Now.IsZero() {
		return ptime.Now()
	}
	return s.Now
}

// directives lists the unique directives of p as written
func directives(p *numberpattern.Pattern) []string {
	ds := p.Directives()
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Original)
	}
	return out
}
