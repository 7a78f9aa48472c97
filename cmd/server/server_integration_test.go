package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runeclicker/internal/balance"
	"runeclicker/internal/engine"
	"runeclicker/internal/identity"
	"runeclicker/internal/leaderboard"
	"runeclicker/internal/save"
	"runeclicker/internal/serverapp"
)

// The integration test drives a full assembly (file persistence,
// engine, HTTP surface) through the public API the way a client would.
func newIntegrationServer(t *testing.T, dataDir string) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard, "", 0)

	saves, err := save.NewFileRepo(dataDir)
	require.NoError(t, err)

	eng, err := engine.New(engine.Options{
		Saves:   saves,
		Balance: balance.Default(),
		Logger:  logger,
	})
	require.NoError(t, err)

	handler, err := serverapp.NewHandler(serverapp.Options{
		Engine:      eng,
		Identity:    identity.NewFileIdentity(dataDir),
		Leaderboard: leaderboard.NewMemoryRepo(),
		Logger:      logger,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, method, url string, body any) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Less(t, resp.StatusCode, 500, "unexpected server error on %s %s", method, url)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestFullProgressionFlow(t *testing.T) {
	dataDir := t.TempDir()
	srv := newIntegrationServer(t, dataDir)

	// Earn click money, then buy the cheapest upgrade.
	for i := 0; i < 12; i++ {
		call(t, http.MethodPost, srv.URL+"/api/click", nil)
	}
	res := call(t, http.MethodPost, srv.URL+"/api/upgrades/buy", map[string]string{"id": "cursor"})
	require.Equal(t, true, res["ok"], "reason: %v", res["reason"])

	st := call(t, http.MethodGet, srv.URL+"/api/state", nil)
	assert.Equal(t, 2.0, st["money_per_click"])

	// Reach the rebirth threshold through the dev backdoor and rebirth.
	call(t, http.MethodPost, srv.URL+"/api/dev/grant", map[string]any{"kind": "money", "amount": 5000.0})
	rb := call(t, http.MethodPost, srv.URL+"/api/rebirth", nil)
	require.Equal(t, true, rb["ok"])
	assert.Equal(t, 5.0, rb["points_gained"])

	st = call(t, http.MethodGet, srv.URL+"/api/state", nil)
	assert.Equal(t, 0.0, st["money"])
	assert.Equal(t, 5.0, st["rebirth_points"])
	assert.Equal(t, 1.0, st["money_per_click"], "run-scoped upgrades reset")

	// Spend the points on a rebirth upgrade that survives resets.
	res = call(t, http.MethodPost, srv.URL+"/api/rebirth-upgrades/buy", map[string]string{"id": "rb_click"})
	require.Equal(t, true, res["ok"])

	st = call(t, http.MethodGet, srv.URL+"/api/state", nil)
	assert.Equal(t, 11.0, st["money_per_click"])
}

func TestStateSurvivesRestart(t *testing.T) {
	dataDir := t.TempDir()

	srv := newIntegrationServer(t, dataDir)
	call(t, http.MethodPost, srv.URL+"/api/dev/grant", map[string]any{"kind": "gems", "amount": 42.0})
	srv.Close()

	srv2 := newIntegrationServer(t, dataDir)
	st := call(t, http.MethodGet, srv2.URL+"/api/state", nil)
	assert.Equal(t, 42.0, st["gems"])
	assert.Equal(t, true, st["gem_ever_held"])
}
