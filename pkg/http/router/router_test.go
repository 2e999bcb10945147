package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/randcut/pkg/http/usecases"
	http_server "github.com/lintang-b-s/randcut/pkg/http/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const bridgedTriangles = `"n": 6, "edges": [[0,1],[1,2],[2,0],[3,4],[4,5],[5,3],[2,3]]`

func newTestHandler(useRateLimit bool, config http_server.Config) http.Handler {
	log := zap.NewNop()
	service := usecases.NewCutService(log, 50, 2, 200)
	return NewAPI(log).Handler(config, useRateLimit, service)
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type dataEnvelope struct {
	Data struct {
		CutSize      int     `json:"cut_size"`
		Sides        []bool  `json:"sides"`
		Edges        int     `json:"edges"`
		LowerBound   float64 `json:"lower_bound"`
		Trials       int     `json:"trials"`
		FoundInTrial int     `json:"found_in_trial"`
		Strategy     string  `json:"strategy"`
		Probability  float64 `json:"success_probability_lower_bound"`
		Statistics   struct {
			Samples  int     `json:"samples"`
			Expected float64 `json:"expected"`
		} `json:"statistics"`
	} `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) dataEnvelope {
	t.Helper()
	var env dataEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestCutEndpoints(t *testing.T) {
	h := newTestHandler(false, http_server.Config{})

	t.Run("max cut", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/maxcut", "{"+bridgedTriangles+"}")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		env := decode(t, rec)
		assert.GreaterOrEqual(t, env.Data.CutSize, 4)
		assert.Equal(t, 7, env.Data.Edges)
		assert.Equal(t, 3.5, env.Data.LowerBound)
		assert.Len(t, env.Data.Sides, 6)
	})

	t.Run("random cut", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/randomcut", "{"+bridgedTriangles+`, "seed": 3, "samples": 500}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		env := decode(t, rec)
		assert.Equal(t, 500, env.Data.Statistics.Samples)
		assert.Equal(t, 3.5, env.Data.Statistics.Expected)
	})

	t.Run("random cut uses the default sample count", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/randomcut", "{"+bridgedTriangles+"}")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, 200, decode(t, rec).Data.Statistics.Samples)
	})

	t.Run("min cut", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/mincut", "{"+bridgedTriangles+`, "trials": 200, "seed": 9}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		env := decode(t, rec)
		assert.Equal(t, 1, env.Data.CutSize)
		assert.Equal(t, 200, env.Data.Trials)
		assert.Equal(t, "uniform_edge", env.Data.Strategy)
		assert.Greater(t, env.Data.Probability, 0.99)
	})

	t.Run("min cut from confidence", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/mincut", "{"+bridgedTriangles+`, "confidence": 0.999}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		env := decode(t, rec)
		assert.Equal(t, 1, env.Data.CutSize)
		assert.GreaterOrEqual(t, env.Data.Probability, 0.999)
	})

	t.Run("min cut with vertex then neighbor sampling has no bound", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/mincut",
			"{"+bridgedTriangles+`, "trials": 100, "strategy": "vertex_then_neighbor"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		env := decode(t, rec)
		assert.Equal(t, "vertex_then_neighbor", env.Data.Strategy)
		assert.Zero(t, env.Data.Probability)
	})

	t.Run("min cut of a disconnected graph", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/mincut", `{"n": 4, "edges": [[0,1],[2,3]]}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		env := decode(t, rec)
		assert.Equal(t, 0, env.Data.CutSize)
		assert.Equal(t, -1, env.Data.FoundInTrial)
		assert.Equal(t, 1.0, env.Data.Probability)
	})
}

func TestCutEndpointErrors(t *testing.T) {
	h := newTestHandler(false, http_server.Config{})

	testCases := []struct {
		name     string
		path     string
		body     string
		expected int
	}{
		{name: "badly formed json", path: "/api/maxcut", body: `{"n": 3,`, expected: http.StatusBadRequest},
		{name: "unknown field", path: "/api/maxcut", body: `{"n": 3, "weights": [1]}`, expected: http.StatusBadRequest},
		{name: "empty body", path: "/api/maxcut", body: ``, expected: http.StatusBadRequest},
		{name: "missing vertex count", path: "/api/maxcut", body: `{"edges": []}`, expected: http.StatusBadRequest},
		{name: "endpoint out of range", path: "/api/maxcut", body: `{"n": 2, "edges": [[0,2]]}`, expected: http.StatusBadRequest},
		{name: "min cut of one vertex", path: "/api/mincut", body: `{"n": 1, "edges": []}`, expected: http.StatusBadRequest},
		{name: "unknown strategy", path: "/api/mincut", body: `{"n": 3, "strategy": "edge_list"}`, expected: http.StatusBadRequest},
		{name: "confidence out of range", path: "/api/mincut", body: `{"n": 3, "confidence": 1.5}`, expected: http.StatusBadRequest},
		{name: "too many samples", path: "/api/randomcut", body: `{"n": 3, "samples": 1000001}`, expected: http.StatusBadRequest},
		{name: "unknown route", path: "/api/minimumcut", body: `{"n": 3}`, expected: http.StatusNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.expected, rec.Code, rec.Body.String())
			if tt.expected == http.StatusBadRequest {
				env := decode(t, rec)
				assert.Equal(t, http.StatusText(http.StatusBadRequest), env.Error.Code)
				assert.NotEmpty(t, env.Error.Message)
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Run("heartbeat", func(t *testing.T) {
		h := newTestHandler(false, http_server.Config{})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ".", rec.Body.String())
	})

	t.Run("json content type is enforced", func(t *testing.T) {
		h := newTestHandler(false, http_server.Config{})
		req := httptest.NewRequest(http.MethodPost, "/api/maxcut", strings.NewReader(`{"n": 1}`))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("rate limit", func(t *testing.T) {
		h := newTestHandler(true, http_server.Config{RateLimit: 0.001, RateBurst: 2})
		codes := []int{}
		for i := 0; i < 3; i++ {
			rec := doJSON(t, h, http.MethodPost, "/api/maxcut", `{"n": 2, "edges": [[0,1]]}`)
			codes = append(codes, rec.Code)
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("real ip", func(t *testing.T) {
		var got string
		h := RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { got = r.RemoteAddr }))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.7, 10.0.0.1")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "10.0.0.7", got)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		api := NewAPI(zap.NewNop())
		h := api.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

type streamFrame struct {
	Type    string          `json:"type"`
	Trial   int             `json:"trial"`
	CutSize int             `json:"cut_size"`
	Data    json.RawMessage `json:"data"`
}

func TestMinCutStream(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(false, http_server.Config{}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, _, _, err := ws.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/api/ws/mincut")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetDeadline(time.Now().Add(10*time.Second)))

	require.NoError(t, wsutil.WriteClientText(conn, []byte("{"+bridgedTriangles+`, "trials": 30, "seed": 4}`)))

	trials := map[int]bool{}
	for {
		msg, err := wsutil.ReadServerText(conn)
		require.NoError(t, err)

		var frame streamFrame
		require.NoError(t, json.Unmarshal(msg, &frame))
		if frame.Type == "trial" {
			trials[frame.Trial] = true
			assert.GreaterOrEqual(t, frame.CutSize, 1)
			continue
		}

		require.Equal(t, "result", frame.Type, string(msg))
		var result struct {
			CutSize int `json:"cut_size"`
			Trials  int `json:"trials"`
		}
		require.NoError(t, json.Unmarshal(frame.Data, &result))
		assert.Equal(t, 30, result.Trials)
		assert.GreaterOrEqual(t, result.CutSize, 1)
		break
	}
	assert.Len(t, trials, 30)
}

func TestMinCutStreamRejectsBadRequest(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(false, http_server.Config{}))
	defer srv.Close()

	conn, _, _, err := ws.Dial(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http")+"/api/ws/mincut")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetDeadline(time.Now().Add(10*time.Second)))

	require.NoError(t, wsutil.WriteClientText(conn, []byte(`{"n": 1}`)))

	msg, err := wsutil.ReadServerText(conn)
	require.NoError(t, err)
	var frame struct {
		Type  string `json:"type"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(msg, &frame))
	assert.Equal(t, "error", frame.Type)
	assert.Equal(t, http.StatusText(http.StatusBadRequest), frame.Error.Code)
}
