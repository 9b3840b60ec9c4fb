package web_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbelkadi/chantrack/internal/domain"
	"github.com/rbelkadi/chantrack/internal/estimate"
	"github.com/rbelkadi/chantrack/internal/service"
	"github.com/rbelkadi/chantrack/internal/store"
	"github.com/rbelkadi/chantrack/internal/tabular"
	"github.com/rbelkadi/chantrack/internal/views"
	"github.com/rbelkadi/chantrack/internal/web"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Registry) {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	ts, err := tabular.NewStore(t.TempDir(), logger)
	require.NoError(t, err)
	reg := store.Open(ts)
	srv := web.NewServer(reg,
		service.NewSiteService(reg, logger),
		service.NewStockService(reg, logger),
		logger,
	)
	hs := httptest.NewServer(srv)
	t.Cleanup(hs.Close)
	return hs, reg
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestSiteLifecycleOverHTTP(t *testing.T) {
	hs, reg := newTestServer(t)

	resp := postJSON(t, hs.URL+"/api/sites", map[string]any{
		"name":       "Villa Roche",
		"client":     "Mme Roche",
		"work_type":  "Paint",
		"material":   "Peinture Glycéro",
		"surface_m2": 20,
		"coats":      2,
		"start_date": "2025-02-01",
		"end_date":   "2025-02-20",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	site := decodeBody[domain.Site](t, resp)
	assert.NotEmpty(t, site.ID)
	assert.InDelta(t, 6.0, site.Quantity, 1e-9)

	// Assign a team, then check the schedule view picks it up.
	req, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/api/sites/%s/team", hs.URL, site.ID),
		bytes.NewReader([]byte(`{"team":"Équipe MG"}`)))
	require.NoError(t, err)
	putResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = putResp.Body.Close()
	require.Equal(t, http.StatusNoContent, putResp.StatusCode)

	schedResp, err := http.Get(hs.URL + "/api/schedule")
	require.NoError(t, err)
	entries := decodeBody[[]views.ScheduleEntry](t, schedResp)
	require.Len(t, entries, 1)
	assert.Equal(t, "Villa Roche", entries[0].Site)
	assert.Equal(t, "Équipe MG", entries[0].Team)

	// Withdraw from the seeded depot stock and read the dashboard.
	wResp := postJSON(t, hs.URL+"/api/stock/PGL-10/withdraw", map[string]any{
		"site_id": site.ID, "quantity": 4,
	})
	require.Equal(t, http.StatusCreated, wResp.StatusCode)
	mr := decodeBody[domain.MaterialRequest](t, wResp)
	assert.Equal(t, 4.0, mr.Quantity)

	dResp, err := http.Get(hs.URL + "/api/dashboard")
	require.NoError(t, err)
	dash := decodeBody[views.Dashboard](t, dResp)
	assert.Equal(t, 1, dash.Sites)
	assert.Equal(t, 1, dash.Requests)

	// Delete and confirm a repeat delete is a 404, not a crash.
	del := func() int {
		req, err := http.NewRequest(http.MethodDelete, hs.URL+"/api/sites/"+site.ID, nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		return resp.StatusCode
	}
	assert.Equal(t, http.StatusNoContent, del())
	assert.Equal(t, http.StatusNotFound, del())
	assert.Zero(t, reg.Sites.Len())
}

func TestEstimateEndpoint(t *testing.T) {
	hs, _ := newTestServer(t)

	resp := postJSON(t, hs.URL+"/api/estimate", map[string]any{
		"work_type": "Paint", "material": "Peinture Glycéro", "surface_m2": 20, "coats": 2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	est := decodeBody[estimate.Estimate](t, resp)
	assert.InDelta(t, 6.0, est.Quantity, 1e-9)
	assert.InDelta(t, 120.0, est.Cost, 1e-9)

	bad := postJSON(t, hs.URL+"/api/estimate", map[string]any{
		"work_type": "Paint", "material": "Peinture Fantôme", "surface_m2": 20,
	})
	defer func() { _ = bad.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestClientCRUDOverHTTP(t *testing.T) {
	hs, reg := newTestServer(t)

	resp := postJSON(t, hs.URL+"/api/clients", map[string]any{
		"name": "Mme Roche", "email": "roche@example.org", "status": "Active",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	client := decodeBody[domain.Client](t, resp)
	require.NotEmpty(t, client.ID)

	req, err := http.NewRequest(http.MethodPut, hs.URL+"/api/clients/"+client.ID,
		bytes.NewReader([]byte(`{"name":"Mme Roche","email":"nouveau@example.org"}`)))
	require.NoError(t, err)
	putResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = putResp.Body.Close()
	require.Equal(t, http.StatusNoContent, putResp.StatusCode)

	got, ok := reg.Clients.FindFirst(func(c domain.Client) bool { return c.ID == client.ID })
	require.True(t, ok)
	assert.Equal(t, "nouveau@example.org", got.Email)
	assert.Equal(t, "", got.Status, "full-replace update clears the optional status")
}
