package module

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	modkit "tallybook/internal/modkit"
	"tallybook/internal/modkit/repokit"
	"tallybook/internal/platform/config"
	phttp "tallybook/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokens []string

func (t tokens) NumberTokens() []string { return t }

type pingTx struct {
	repokit.TxRunner
	err error
}

func (p pingTx) Ping(context.Context) error { return p.err }

func get(t *testing.T, m modkit.Module, path string) map[string]any {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var env map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env["data"].(map[string]any)
}

func cfg() config.Conf { return config.New().Prefix("TALLY_API_") }

func TestHealthAndService(t *testing.T) {
	t.Setenv("TALLY_API_SERVICE_NAME", "tally-test")
	m := New(modkit.Deps{Cfg: cfg()})
	assert.Equal(t, "meta", m.Name())

	h := get(t, m, "/meta/health")
	assert.Equal(t, true, h["ok"])
	assert.Equal(t, "tally-test", h["service"])

	s := get(t, m, "/meta/service")
	assert.Equal(t, "tally-test", s["name"])
	assert.EqualValues(t, 0, s["uptime"])
}

func TestReady(t *testing.T) {
	r := get(t, New(modkit.Deps{Cfg: cfg()}), "/meta/ready")
	assert.Equal(t, "ok", r["status"])
	assert.Equal(t, "skipped", r["checks"].([]any)[0].(map[string]any)["status"])

	r = get(t, New(modkit.Deps{Cfg: cfg(), PG: pingTx{}}), "/meta/ready")
	assert.Equal(t, "ok", r["status"])

	r = get(t, New(modkit.Deps{Cfg: cfg(), PG: pingTx{err: errors.New("refused")}}), "/meta/ready")
	assert.Equal(t, "fail", r["status"])
	assert.Equal(t, "refused", r["checks"].([]any)[0].(map[string]any)["error"])
}

func TestVersion(t *testing.T) {
	v := get(t, New(modkit.Deps{Cfg: cfg()}), "/meta/version")
	assert.Equal(t, "tallybook", v["service"])
}

func TestCodecs(t *testing.T) {
	m := New(modkit.Deps{Cfg: cfg()}, modkit.WithPorts(tokens{"Y", "cc"}))
	c := get(t, m, "/meta/codecs")
	assert.Equal(t, []any{"colon", "decimal", "natural"}, c["duration_modes"])
	assert.Equal(t, "%h:%m", c["duration_style"])
	assert.Equal(t, []any{"Y", "cc"}, c["number_tokens"])
	assert.Equal(t, `field:value !excluded field:""`, c["search_syntax"])

	c = get(t, New(modkit.Deps{Cfg: cfg()}), "/meta/codecs")
	assert.Equal(t, []any{}, c["number_tokens"])
}
