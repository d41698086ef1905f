package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/orbitpath/dijkstra"
)

func newTestRouter(opts ...dijkstra.Option) (http.Handler, *Metrics) {
	logger := zap.NewNop()
	metrics := NewMetrics()
	router := NewRouter(logger, RouterDependencies{
		Handlers:       NewHandlers(logger, metrics, opts...),
		Metrics:        metrics,
		AllowedOrigins: []string{"http://localhost:5173"},
	})

	return router, metrics
}

func do(t *testing.T, h http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

type pathsPayload struct {
	Source      int                  `json:"source"`
	Path        []int                `json:"path"`
	Distances   map[string]float64   `json:"distances"`
	Edges       []dijkstra.Edge      `json:"edges"`
	Ranked      []dijkstra.Proximity `json:"ranked"`
	TotalWeight float64              `json:"totalWeight"`
}

func decodePaths(t *testing.T, rec *httptest.ResponseRecorder) pathsPayload {
	t.Helper()
	var p pathsPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))

	return p
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter()
	rec := do(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDPropagated(t *testing.T) {
	router, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestStarter(t *testing.T) {
	router, _ := newTestRouter()
	rec := do(t, router, http.MethodGet, "/api/v1/universe/starter", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"active":[1,2,5,10,42]}`, rec.Body.String())
}

func TestPaths_DefaultsToStarter(t *testing.T) {
	router, _ := newTestRouter()
	rec := do(t, router, http.MethodPost, "/api/v1/paths", `{"source":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	p := decodePaths(t, rec)
	assert.Equal(t, 1, p.Source)
	assert.Equal(t, []int{1, 2, 5, 10, 42}, p.Path)
	assert.InDelta(t, 41.142, p.Distances["42"], 1e-9)
	require.Len(t, p.Edges, 4)
	assert.Equal(t, 1, p.Edges[3].From)
	assert.Equal(t, 42, p.Edges[3].To)
	require.Len(t, p.Ranked, 4)
	assert.Equal(t, 2, p.Ranked[0].Node)
}

func TestPaths_ExplicitSetAndOverrides(t *testing.T) {
	router, _ := newTestRouter()
	body := `{"source":4,"active":[12,8,5,4],"tieBreak":"insertion","strategy":"heap"}`
	rec := do(t, router, http.MethodPost, "/api/v1/paths", body)
	require.Equal(t, http.StatusOK, rec.Code)

	p := decodePaths(t, rec)
	require.Len(t, p.Edges, 3)
	got := make([][2]int, len(p.Edges))
	for i, e := range p.Edges {
		got[i] = [2]int{e.From, e.To}
	}
	assert.Equal(t, [][2]int{{4, 5}, {5, 12}, {5, 8}}, got)
}

// TestPaths_SourceAbsent: the "not found" outcome is a 200 with empty arrays,
// so a renderer can show "no connections".
func TestPaths_SourceAbsent(t *testing.T) {
	router, _ := newTestRouter()
	rec := do(t, router, http.MethodPost, "/api/v1/paths", `{"source":7,"active":[1,2,3]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"source":7,"path":[],"distances":{},"edges":[],"ranked":[],"totalWeight":0}`,
		rec.Body.String())

	// the empty outcome is counted separately
	mrec := do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, mrec.Code)
	assert.Contains(t, mrec.Body.String(), `orbitpath_path_computations_total{outcome="empty"} 1`)
}

func TestPaths_EmptyUniverse(t *testing.T) {
	router, _ := newTestRouter()
	rec := do(t, router, http.MethodPost, "/api/v1/paths", `{"source":1,"active":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decodePaths(t, rec)
	assert.Empty(t, p.Path)
	assert.Empty(t, p.Edges)
}

func TestPaths_BadRequests(t *testing.T) {
	router, _ := newTestRouter()
	cases := map[string]string{
		"malformed":      `{"source":`,
		"unknown field":  `{"source":1,"color":"red"}`,
		"missing source": `{"active":[1,2]}`,
		"source range":   `{"source":101}`,
		"active range":   `{"source":1,"active":[1,0]}`,
		"active dive":    `{"source":1,"active":[1,2,101]}`,
		"tie-break":      `{"source":1,"tieBreak":"random"}`,
		"strategy":       `{"source":1,"strategy":"bfs"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/v1/paths", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Body.String(), `{"error":`), rec.Body.String())
		})
	}
}

func TestPaths_CaseInsensitiveOptions(t *testing.T) {
	router, _ := newTestRouter()
	rec := do(t, router, http.MethodPost, "/api/v1/paths",
		`{"source":1,"active":[1,2,5],"tieBreak":" Insertion","strategy":"HEAP"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []int{1, 2, 5}, decodePaths(t, rec).Path)
}

func TestPaths_DuplicatesCollapse(t *testing.T) {
	active := make([]int, 0, 101)
	for v := 1; v <= 100; v++ {
		active = append(active, v)
	}
	active = append(active, 42)
	body, err := json.Marshal(map[string]any{"source": 1, "active": active})
	require.NoError(t, err)

	router, _ := newTestRouter()
	rec := do(t, router, http.MethodPost, "/api/v1/paths", string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decodePaths(t, rec).Path, 100)
}

func TestWeight(t *testing.T) {
	router, _ := newTestRouter()
	rec := do(t, router, http.MethodGet, "/api/v1/weight?a=10&b=42", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"a":10,"b":42,"diff":32,"gcd":2,"lcm":210,"total":32.410000000000004}`, rec.Body.String())
}

func TestWeight_BadRequests(t *testing.T) {
	router, _ := newTestRouter()
	for _, q := range []string{"a=5&b=5", "a=0&b=5", "a=5&b=101", "a=x&b=1", "b=3"} {
		rec := do(t, router, http.MethodGet, "/api/v1/weight?"+q, "")
		assert.Equalf(t, http.StatusBadRequest, rec.Code, "query %s", q)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter()
	rec := do(t, router, http.MethodGet, "/api/v1/paths", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/paths", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics_CountsComputations(t *testing.T) {
	router, metrics := newTestRouter()
	do(t, router, http.MethodPost, "/api/v1/paths", `{"source":1}`)
	do(t, router, http.MethodPost, "/api/v1/paths", `{"source":2}`)
	do(t, router, http.MethodPost, "/api/v1/paths", `{"source":3}`)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Computations.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Computations.WithLabelValues("empty")))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodPost, "/api/v1/paths", "200")))
}

func TestMetrics_UnmatchedRouteLabel(t *testing.T) {
	router, metrics := newTestRouter()
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/a1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/a2", "").Code)

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.HTTPRequests))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
}
