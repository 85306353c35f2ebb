package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	modkit "tallybook/internal/modkit"
	"tallybook/internal/platform/config"
	phttp "tallybook/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, r phttp.Router, path, body string) (int, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.Mux().ServeHTTP(rr, req)
	var env map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return rr.Code, env
}

func TestRoutes(t *testing.T) {
	t.Setenv("TALLY_API_DURATION_STYLE", "%h:%m")
	m := New(modkit.Deps{Cfg: config.New().Prefix("TALLY_API_")})
	assert.Equal(t, "durations", m.Name())

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	code, env := serve(t, r, "/durations/parse", `{"input":"2:05:30"}`)
	require.Equal(t, http.StatusOK, code)
	data := env["data"].(map[string]any)
	assert.EqualValues(t, 7530, data["seconds"])
	assert.Equal(t, "2:05", data["formatted"])
	assert.Equal(t, "colon", data["mode"])

	code, env = serve(t, r, "/durations/parse", `{"input":"1:3a"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "input", env["field"])

	code, env = serve(t, r, "/durations/parse", `{"input":"1","mode":"roman"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "mode", env["field"])
	assert.Contains(t, env["error"], "colon, natural, decimal")

	code, env = serve(t, r, "/durations/format", `{"seconds":5400,"style":"%h hours %m minutes"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "1 hours 30 minutes", env["data"].(map[string]any)["formatted"])

	code, env = serve(t, r, "/durations/format", `{"seconds":null}`)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, env["data"].(map[string]any)["formatted"])
}
