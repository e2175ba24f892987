package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/leapstack-labs/timelang/internal/engine"
	"github.com/leapstack-labs/timelang/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := testutil.NewTestLogger(t)
	eng, err := engine.New(engine.Config{Workers: 2, Logger: logger})
	require.NoError(t, err)
	return New(Config{Engine: eng, Logger: logger})
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func TestNew_Defaults(t *testing.T) {
	s := New(Config{})
	assert.Equal(t, "127.0.0.1:8080", s.addr)
	assert.Equal(t, 10*time.Second, s.readHeaderTimeout)
	assert.Equal(t, 5*time.Second, s.shutdownTimeout)
	assert.NotNil(t, s.logger)
}

func TestHealth(t *testing.T) {
	rec, body := do(t, newTestServer(t).Handler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestRules(t *testing.T) {
	rec, body := do(t, newTestServer(t).Handler(), http.MethodGet, "/v1/rules", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "expression", body["default"])
	assert.Len(t, body["rules"], 20)
}

func TestParse(t *testing.T) {
	h := newTestServer(t).Handler()

	rec, body := do(t, h, http.MethodPost, "/v1/parse", `{"input":"3 DAYS from now"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "point", body["kind"])
	assert.Equal(t, "Specific", body["node"])
	assert.Equal(t, "3 days from now", body["canonical"])
	assert.Equal(t, "expression", body["rule"])

	ast, ok := body["ast"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Specific", ast["node"])
	assert.NotEmpty(t, ast["children"])
}

func TestParse_As(t *testing.T) {
	h := newTestServer(t).Handler()

	rec, body := do(t, h, http.MethodPost, "/v1/parse", `{"input":"12 am","as":"hour"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, body, "kind")
	assert.Equal(t, "Hour12", body["node"])
	assert.Equal(t, "12 AM", body["canonical"])
}

func TestParse_Kinds(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		input string
		kind  string
		node  string
	}{
		{"next friday", "point", "Specific"},
		{"from 1/1/2024 to 31/1/2024", "range", "TimeRange"},
		{"2 hours and 30 minutes", "duration", "Duration"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			rec, body := do(t, h, http.MethodPost, "/v1/parse", `{"input":"`+tt.input+`"}`)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.kind, body["kind"])
			assert.Equal(t, tt.node, body["node"])
		})
	}

	rec, body := do(t, h, http.MethodPost, "/v1/check", `{"inputs":["from now to tomorrow"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	first := body["results"].([]any)[0].(map[string]any)
	assert.Equal(t, "range", first["kind"])
}

func TestParse_Errors(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		name   string
		body   string
		status int
		column float64
	}{
		{name: "parse error", body: `{"input":"5 eons ago"}`, status: http.StatusUnprocessableEntity, column: 3},
		{name: "range violation", body: `{"input":"32/1/2020"}`, status: http.StatusUnprocessableEntity, column: 1},
		{name: "unknown rule", body: `{"input":"5","as":"weekday"}`, status: http.StatusBadRequest},
		{name: "malformed json", body: `{"input":`, status: http.StatusBadRequest},
		{name: "unknown field", body: `{"text":"now"}`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, h, http.MethodPost, "/v1/parse", tt.body)
			assert.Equal(t, tt.status, rec.Code)

			e, ok := body["error"].(map[string]any)
			require.True(t, ok)
			assert.NotEmpty(t, e["message"])
			if tt.column != 0 {
				assert.Equal(t, tt.column, e["column"])
				assert.Equal(t, float64(1), e["line"])
			}
		})
	}
}

func TestCheck(t *testing.T) {
	h := newTestServer(t).Handler()

	rec, body := do(t, h, http.MethodPost, "/v1/check", `{"inputs":["tomorrow","bogus","last week"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 3)
	second := results[1].(map[string]any)
	assert.Equal(t, "bogus", second["input"])
	assert.NotNil(t, second["error"])

	assert.Equal(t, map[string]any{"total": float64(3), "valid": float64(2), "invalid": float64(1)}, body["summary"])
}

func TestCheck_Empty(t *testing.T) {
	rec, body := do(t, newTestServer(t).Handler(), http.MethodPost, "/v1/check", `{"inputs":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, body["results"])
}

func TestFormat(t *testing.T) {
	h := newTestServer(t).Handler()

	rec, body := do(t, h, http.MethodPost, "/v1/format", `{"document":"# todo\n2 WEEKS AGO\n"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# todo\n2 weeks ago\n", body["document"])
	assert.Equal(t, []any{float64(2)}, body["changed"])

	rec, body = do(t, h, http.MethodPost, "/v1/format", `{"document":"tomorrow\n5 eons ago"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	e := body["error"].(map[string]any)
	assert.Equal(t, float64(2), e["line"])
	assert.Equal(t, float64(3), e["column"])
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/parse", nil)
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServeListener_Shutdown(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ServeListener(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
