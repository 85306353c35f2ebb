// Package numberpattern expands number formats such as "INV-{Y}-{ccy+1,4}" into
// concrete identifiers
//
// Each {...} directive is "base (op literal)*" where op is one of
//   - +N  add N to the seed
//   - -N  subtract N from the seed
//   - ,N  zero pad the resolved value to N characters
//
// The base and the adjusted seed are handed to a Strategy, which decides what
// the directive becomes. Anything outside braces is copied through.
package numberpattern

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"tallybook/internal/core/codecerr"
)

const op = "numberpattern"

const (
	// MaxWidth bounds the ,N zero pad
	MaxWidth = 64
	// MaxOffset bounds the summed +N and -N of one directive
	MaxOffset = math.MaxInt32
)

var (
	directiveRE = regexp.MustCompile(`\{[^}]*\}`)
	splitRE     = regexp.MustCompile(`[+\-,]`)
	numericRE   = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// Strategy resolves one directive
// original is the directive text including braces, base its leading token
type Strategy interface {
	Resolve(ctx context.Context, original, base string, seed int) (Value, error)
}

// StrategyFunc adapts a function to Strategy
type StrategyFunc func(ctx context.Context, original, base string, seed int) (Value, error)

// Resolve calls f
func (f StrategyFunc) Resolve(ctx context.Context, original, base string, seed int) (Value, error) {
	return f(ctx, original, base, seed)
}

// Directive is one parsed {...} placeholder
type Directive struct {
	Original string
	Base     string
	// Offset is the sum of every +N and -N
	Offset int
	// Adjusted is true when at least one +N or -N was present
	Adjusted bool
	// Width is the zero pad width, 0 when absent
	Width int
}

// Seed returns the seed handed to the strategy for startWith
// a directive without adjustments always asks for 1
func (d Directive) Seed(startWith int) (int, error) {
	if !d.Adjusted {
		return 1, nil
	}
	if (d.Offset > 0 && startWith > math.MaxInt-d.Offset) ||
		(d.Offset < 0 && startWith < math.MinInt-d.Offset) {
		return 0, codecerr.Format(op, d.Original, "offset out of range")
	}
	return startWith + d.Offset, nil
}

// Pattern is a compiled format
type Pattern struct {
	format     string
	directives []Directive
}

// Format returns the source text
func (p *Pattern) Format() string { return p.format }

// Directives returns the unique directives in order of first appearance
func (p *Pattern) Directives() []Directive {
	out := make([]Directive, len(p.directives))
	copy(out, p.directives)
	return out
}

// Compile parses every directive in format
func Compile(format string) (*Pattern, error) {
	p := &Pattern{format: format}
	seen := map[string]struct{}{}
	for _, raw := range directiveRE.FindAllString(format, -1) {
		if _, ok := seen[raw]; ok {
			continue
		}
		seen[raw] = struct{}{}
		d, err := parseDirective(raw)
		if err != nil {
			return nil, err
		}
		p.directives = append(p.directives, d)
	}
	return p, nil
}

// MustCompile is Compile that panics, for formats known at build time
func MustCompile(format string) *Pattern {
	p, err := Compile(format)
	if err != nil {
		panic(err)
	}
	return p
}

func parseDirective(raw string) (Directive, error) {
	body := raw[1 : len(raw)-1]
	d := Directive{Original: raw}

	// split keeping the operators: base, op, lit, op, lit...
	idx := splitRE.FindAllStringIndex(body, -1)
	d.Base = body
	if len(idx) == 0 {
		return d, nil
	}
	d.Base = body[:idx[0][0]]

	for n, loc := range idx {
		end := len(body)
		if n+1 < len(idx) {
			end = idx[n+1][0]
		}
		sym := body[loc[0]]
		lit := body[loc[1]:end]
		if lit == "" {
			return Directive{}, codecerr.Format(op, raw, "operator without a value")
		}
		switch sym {
		case '+', '-':
			v, err := numericLiteral(lit)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return Directive{}, codecerr.Format(op, lit, "offset out of range")
				}
				return Directive{}, codecerr.Format(op, lit, "offset is not a number")
			}
			if sym == '-' {
				v = -v
			}
			if sum := int64(d.Offset) + int64(v); sum > MaxOffset || sum < -MaxOffset {
				return Directive{}, codecerr.Format(op, lit, "offset out of range")
			}
			d.Offset += v
			d.Adjusted = true
		case ',':
			w, err := strconv.Atoi(lit)
			if err != nil || w < 0 || strconv.Itoa(w) != lit {
				return Directive{}, codecerr.Format(op, lit, "length is not a plain integer")
			}
			if w > MaxWidth {
				return Directive{}, codecerr.Format(op, lit, "length out of range")
			}
			d.Width = w
		}
	}
	return d, nil
}

// numericLiteral accepts what the grammar calls numeric and truncates it toward zero
func numericLiteral(lit string) (int, error) {
	if !numericRE.MatchString(lit) {
		return 0, strconv.ErrSyntax
	}
	if n, err := strconv.Atoi(lit); err == nil {
		if n > MaxOffset || n < -MaxOffset {
			return 0, strconv.ErrRange
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, err
	}
	f = math.Trunc(f)
	if f > MaxOffset || f < -MaxOffset {
		return 0, strconv.ErrRange
	}
	return int(f), nil
}

// Expand resolves every directive against startWith and substitutes the results
// identical directives share one resolution. On error nothing is returned
func (p *Pattern) Expand(ctx context.Context, startWith int, s Strategy) (string, error) {
	if len(p.directives) == 0 {
		return p.format, nil
	}
	pairs := make([]string, 0, 2*len(p.directives))
	for _, d := range p.directives {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		seed, err := d.Seed(startWith)
		if err != nil {
			return "", err
		}
		v, err := s.Resolve(ctx, d.Original, d.Base, seed)
		if err != nil {
			return "", err
		}
		if !v.Valid() {
			return "", &codecerr.TypeError{Directive: d.Original}
		}
		out := v.String()
		if pad := d.Width - len(out); pad > 0 {
			out = strings.Repeat("0", pad) + out
		}
		pairs = append(pairs, d.Original, out)
	}
	return strings.NewReplacer(pairs...).Replace(p.format), nil
}

// Generator binds a format to a strategy
type Generator struct {
	format   string
	strategy Strategy
}

// New returns a generator for format; s must not be nil
func New(format string, s Strategy) *Generator {
	if s == nil {
		panic("numberpattern: nil strategy")
	}
	return &Generator{format: format, strategy: s}
}

// Number expands the format with startWith as the running seed
func (g *Generator) Number(ctx context.Context, startWith int) (string, error) {
	p, err := Compile(g.format)
	if err != nil {
		return "", err
	}
	return p.Expand(ctx, startWith, g.strategy)
}
