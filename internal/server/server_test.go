package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sant0-9/concierge/internal/chat"
	"github.com/sant0-9/concierge/internal/config"
	"github.com/sant0-9/concierge/internal/content"
	"github.com/sant0-9/concierge/internal/intent"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	log := zaptest.NewLogger(t)
	svc := chat.New(content.MustDefault(), chat.Options{
		Logger:  log,
		Metrics: chat.NewMetrics(reg),
	})
	cfg := config.ServerConfig{Addr: ":0", AllowedOrigins: []string{"https://vanguardconsulting.io"}}
	return New(svc, cfg, reg, log)
}

func postChat(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestChat(t *testing.T) {
	s := newTestServer(t)

	w := postChat(t, s, `{"query":"cual es el precio","language":"es"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "💼 "+intent.Resolve(intent.Pricing, content.Spanish), resp.Answer)
	assert.Equal(t, "pricing", resp.Intent)
	assert.Equal(t, "", resp.Fallback)
	assert.Equal(t, "es", resp.Language)
}

func TestChatFallbackFieldAlwaysPresent(t *testing.T) {
	s := newTestServer(t)

	w := postChat(t, s, `{"query":"xylophone"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "apology", raw["fallback"])
	assert.Equal(t, "", raw["intent"])
	assert.Equal(t, "en", raw["language"])
}

func TestChatErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "malformed", body: `{"query":`, code: "invalid_request"},
		{name: "empty", body: `{"query":"  "}`, code: "empty_query"},
		{name: "too long", body: `{"query":"` + strings.Repeat("x", chat.MaxQueryLength+1) + `"}`, code: "query_too_long"},
		{name: "language", body: `{"query":"hi","language":"fr"}`, code: "unsupported_language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postChat(t, s, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var env ErrorEnvelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestIntents(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/intents", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Intents []intentInfo `json:"intents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Intents, 13)
	assert.Equal(t, "services", resp.Intents[0].ID)
	assert.Equal(t, "🧭", resp.Intents[0].Icon)
	assert.Contains(t, resp.Intents[0].Keywords["en"], "service")
	assert.Contains(t, resp.Intents[0].Keywords["es"], "servicio")
	assert.Equal(t, "about", resp.Intents[12].ID)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	postChat(t, s, `{"query":"what services do you offer"}`)

	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `concierge_replies_total{intent="services",locale="en"} 1`)
	assert.Contains(t, body, `concierge_http_requests_total{method="POST",route="/api/chat",status="200"} 1`)
}

func TestNewSharesRegistry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	svc := chat.New(content.MustDefault(), chat.Options{Metrics: chat.NewMetrics(reg)})
	cfg := config.ServerConfig{Addr: ":0"}

	first := New(svc, cfg, reg, nil)
	var second *Server
	require.NotPanics(t, func() { second = New(svc, cfg, reg, nil) })

	for _, s := range []*Server{first, second} {
		w := httptest.NewRecorder()
		s.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	second.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `concierge_http_requests_total{method="GET",route="/healthz",status="200"} 2`)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", bytes.NewReader(nil))
	req.Header.Set("Origin", "https://vanguardconsulting.io")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://vanguardconsulting.io", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
