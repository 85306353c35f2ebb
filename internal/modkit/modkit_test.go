package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "tallybook/internal/platform/net/http"
	kit "tallybook/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults %+v", b)
	}
	var r phttp.Router
	if b.Subrouter(r) != r {
		t.Fatalf("default subrouter must be identity")
	}
	kit.MustNotPanic(t, func() { b.Register(r) })
}

func TestBuild_CopiesMiddlewares(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	src := []func(http.Handler) http.Handler{mw}
	b := Build(WithName("numbering"), WithPrefix("/numbering"), WithMiddlewares(src...), WithPorts(42))
	src[0] = nil

	if b.Name != "numbering" || b.Prefix != "/numbering" || b.Ports != 42 {
		t.Fatalf("options not applied %+v", b)
	}
	if b.Mw[0] == nil {
		t.Fatalf("Built.Mw must not alias the caller slice")
	}
}

func TestBase_MountRoutes(t *testing.T) {
	order := []string{}
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "durations")
			next.ServeHTTP(w, r)
		})
	}
	base := NewBase(
		[]Option{WithName("durations"), WithPrefix("durations/")},
		[]Option{
			WithMiddlewares(mw),
			WithSubrouter(func(r phttp.Router) phttp.Router { order = append(order, "sub"); return r }),
			WithRegister(func(r phttp.Router) {
				order = append(order, "extra")
				r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
			}),
		},
		func(r phttp.Router) {
			order = append(order, "routes")
			r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
		},
	)
	if base.Name() != "durations" || base.Prefix() != "/durations" {
		t.Fatalf("name/prefix = %q %q", base.Name(), base.Prefix())
	}

	r := phttp.AdaptChi(chi.NewRouter())
	base.MountRoutes(r)
	if len(order) != 3 || order[0] != "sub" || order[1] != "routes" || order[2] != "extra" {
		t.Fatalf("mount order = %v", order)
	}

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/durations/ping", nil))
	if rr.Code != http.StatusOK || rr.Header().Get("X-Module") != "durations" {
		t.Fatalf("ping = %d %v", rr.Code, rr.Header())
	}
	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/durations/extra", nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("extra = %d", rr.Code)
	}
}

func TestBase_Ports(t *testing.T) {
	base := NewBase([]Option{WithName("x"), WithPrefix("/x")}, []Option{WithPorts("injected")}, nil)
	if base.Ports() != "injected" || base.Injected() != "injected" {
		t.Fatalf("ports = %v", base.Ports())
	}
	base.SetPorts("exported")
	if base.Ports() != "exported" || base.Injected() != "injected" {
		t.Fatalf("SetPorts must not touch injected ports")
	}
}

func TestBase_NamePanics(t *testing.T) {
	base := NewBase(nil, nil, nil)
	kit.MustPanic(t, func() { _ = base.Name() })
	kit.MustPanic(t, func() { _ = base.Prefix() })
}

func TestDeps_HasPG(t *testing.T) {
	var d Deps
	if d.HasPG() {
		t.Fatalf("zero deps has no pg")
	}
}
