// Package api composes the tallybook HTTP API from its modules
package api

import (
	"tallybook/internal/platform/config"
	"tallybook/internal/platform/logger"
	phttp "tallybook/internal/platform/net/http"
	"tallybook/internal/platform/store"

	"tallybook/internal/modkit"
	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/modkit/module"
	"tallybook/internal/modkit/swaggerkit"

	durmod "tallybook/internal/services/api/durations/module"
	metamod "tallybook/internal/services/api/meta/module"
	numdomain "tallybook/internal/services/api/numbering/domain"
	nummod "tallybook/internal/services/api/numbering/module"
	searchmod "tallybook/internal/services/api/search/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	Stack          httpkit.StackOptions
}

// Mount mounts every module under /api/v1 and returns them in mount order
func Mount(r phttp.Router, opt Options) []module.Module {
	log := opt.Logger
	if log == nil {
		log = logger.Get()
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log: *log,
		Cfg: opt.Config,
	}
	if opt.Store.Enabled() {
		deps.PG = opt.Store.PG
	}

	// numbering first, meta reports its tokens
	numbering := nummod.New(deps)
	tokens := module.MustPortsOf[numdomain.TokenLister](numbering)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(tokens)),
		durmod.New(deps),
		searchmod.New(deps),
		numbering,
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	log.Info().Strs("modules", module.Names()).Bool("postgres", deps.HasPG()).Msg("api mounted")
	return mods
}
