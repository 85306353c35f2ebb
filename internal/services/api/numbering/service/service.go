// Package service computes and issues invoice numbers
package service

import (
	"context"
	"strings"

	"tallybook/internal/core/numberpattern"
	perr "tallybook/internal/platform/errors"
	"tallybook/internal/platform/logger"
	ptime "tallybook/internal/platform/time"
	"tallybook/internal/services/api/numbering/domain"
	"tallybook/internal/services/numbering/catalog"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the compiled pattern cache when none is configured
const DefaultCacheSize = 256

// Service is the numbering contract
type Service interface {
	domain.ServicePort
	domain.TokenLister
}

// Svc implements Service over a Book and a catalog
type Svc struct {
	book     domain.Book
	cat      *catalog.Catalog
	patterns *lru.Cache[string, *numberpattern.Pattern]
	log      logger.Logger
	newID    func() string
}

// New builds a Svc; cacheSize <= 0 means DefaultCacheSize
func New(book domain.Book, cat *catalog.Catalog, cacheSize int, log logger.Logger) (*Svc, error) {
	if book == nil {
		return nil, perr.Internalf("numbering: nil book")
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *numberpattern.Pattern](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Svc{
		book:     book,
		cat:      cat,
		patterns: cache,
		log:      log.With().Str("component", "numbering").Logger(),
		newID:    func() string { return uuid.NewString() },
	}, nil
}

// Preview computes the next number for in without recording it
func (s *Svc) Preview(ctx context.Context, in domain.NumberInput) (domain.Preview, error) {
	p, name, err := s.pattern(in)
	if err != nil {
		return domain.Preview{}, err
	}
	num, err := s.expand(ctx, p, in, s.book)
	if err != nil {
		return domain.Preview{}, perr.WithOp(err, "numbering.preview")
	}
	return domain.Preview{Number: num, Format: p.Format(), FormatName: name}, nil
}

// Issue computes the next number and records it while holding the format's lock
func (s *Svc) Issue(ctx context.Context, in domain.NumberInput) (domain.Issued, error) {
	p, _, err := s.pattern(in)
	if err != nil {
		return domain.Issued{}, err
	}

	var rec domain.Issued
	err = s.book.Locked(ctx, p.Format(), func(l domain.Ledger) error {
		num, err := s.expand(ctx, p, in, l)
		if err != nil {
			return err
		}
		rec = domain.Issued{
			ID:             s.newID(),
			Format:         p.Format(),
			Number:         num,
			Customer:       in.Customer,
			CustomerNumber: in.CustomerNumber,
			IssuedAt:       ptime.Now().UTC(),
		}
		return l.Append(ctx, rec)
	})
	if err != nil {
		return domain.Issued{}, perr.WithOp(err, "numbering.issue")
	}

	evt := s.log.Info()
	if id := logger.RequestID(ctx); id != "" {
		evt = evt.Str("request_id", id)
	}
	evt.Str("number", rec.Number).
		Str("format", rec.Format).
		Str("customer", rec.Customer).
		Msg("number issued")
	return rec, nil
}

// Formats lists the catalog in file order
func (s *Svc) Formats(_ context.Context) ([]domain.FormatInfo, error) {
	def := s.cat.DefaultEntry().Name
	entries := s.cat.Entries()
	out := make([]domain.FormatInfo, 0, len(entries))
	for _, e := range entries {
		p, err := s.compile(e.Format)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.FormatInfo{
			Name:        e.Name,
			Format:      e.Format,
			Description: e.Description,
			Default:     e.Name == def,
			Directives:  directives(p),
		})
	}
	return out, nil
}

// NumberTokens implements domain.TokenLister
func (s *Svc) NumberTokens() []string { return Tokens() }

// pattern picks the inline format, then the named one, then the catalog default
func (s *Svc) pattern(in domain.NumberInput) (*numberpattern.Pattern, string, error) {
	if f := in.Format; f != "" {
		p, err := s.compile(f)
		return p, "", err
	}
	e := s.cat.DefaultEntry()
	if name := strings.TrimSpace(in.FormatName); name != "" {
		var ok bool
		if e, ok = s.cat.Get(name); !ok {
			return nil, "", perr.WithField(perr.NotFoundf("no format named %q", name), "format_name")
		}
	}
	p, err := s.compile(e.Format)
	return p, e.Name, err
}

func (s *Svc) compile(format string) (*numberpattern.Pattern, error) {
	if p, ok := s.patterns.Get(format); ok {
		return p, nil
	}
	p, err := numberpattern.Compile(format)
	if err != nil {
		return nil, perr.FromCodec(err, "format")
	}
	s.patterns.Add(format, p)
	return p, nil
}

func (s *Svc) expand(ctx context.Context, p *numberpattern.Pattern, in domain.NumberInput, c domain.Counter) (string, error) {
	st := InvoiceTokens{
		Counter:        c,
		Format:         p.Format(),
		Customer:       in.Customer,
		CustomerNumber: in.CustomerNumber,
		Now:            ptime.Now(),
	}
	num, err := p.Expand(ctx, in.StartWith, st)
	if err != nil {
		return "", perr.FromCodec(err, "format")
	}
	return num, nil
}
