// Package module wires numbering into the API
package module

import (
	"context"
	"fmt"
	"time"

	modkit "tallybook/internal/modkit"
	phttp "tallybook/internal/platform/net/http"
	"tallybook/internal/services/api/numbering/domain"
	numhttp "tallybook/internal/services/api/numbering/http"
	numrepo "tallybook/internal/services/api/numbering/repo"
	numsvc "tallybook/internal/services/api/numbering/service"
	"tallybook/internal/services/numbering/catalog"
)

// Module is the numbering module
type Module struct {
	modkit.Base
	svc *numsvc.Svc
}

// Ports is what numbering exposes to other modules
type Ports struct {
	Numbers domain.ServicePort
	Tokens  domain.TokenLister
}

// New builds the module
//
// TALLY_API_NUMBER_FORMATS names a catalog file, TALLY_API_PATTERN_CACHE sizes
// the compiled pattern cache. With Postgres the ledger lives in issued_numbers,
// otherwise in process memory
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	cat := catalog.MustLoad(deps.Cfg.MayString("NUMBER_FORMATS", ""))

	var book domain.Book
	if deps.HasPG() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := numrepo.EnsureSchema(ctx, deps.PG); err != nil {
			panic(fmt.Errorf("numbering: %w", err))
		}
		book = numrepo.NewPGBook(deps.PG, deps.Cfg.MayDuration("NUMBER_LOCK_TIMEOUT", 5*time.Second))
	} else {
		deps.Log.Warn().Msg("numbering: no postgres configured, issued numbers are kept in memory")
		book = numrepo.NewMemory()
	}

	svc, err := numsvc.New(book, cat, deps.Cfg.MayInt("PATTERN_CACHE", numsvc.DefaultCacheSize), deps.Log)
	if err != nil {
		panic(fmt.Errorf("numbering: %w", err))
	}

	m := &Module{svc: svc}
	m.Base = modkit.NewBase(
		[]modkit.Option{modkit.WithName("numbering"), modkit.WithPrefix("/numbering")},
		opts,
		func(r phttp.Router) { numhttp.Register(r, m.svc) },
	)
	m.SetPorts(Ports{Numbers: svc, Tokens: svc})
	return m
}
