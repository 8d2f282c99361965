package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/lotus-wallet/internal/payload"
	"github.com/tinytelemetry/lotus-wallet/internal/presets"
	"github.com/tinytelemetry/lotus-wallet/internal/wallet"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	provider, err := wallet.NewStaticProvider(wallet.StaticConfig{})
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}
	srv := NewServer("", Config{
		Tokens:       presets.Default(),
		Chains:       provider,
		MaxPayloadKB: 1,
	})
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	w := do(t, newTestServer(t), http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("health status = %v, want ok", body["status"])
	}
	if body["token_count"] != float64(len(presets.Default())) {
		t.Errorf("token_count = %v", body["token_count"])
	}
}

func TestHealthEndpoint_WrongMethod(t *testing.T) {
	t.Parallel()

	w := do(t, newTestServer(t), http.MethodPost, "/api/health", "")
	if w.Code != http.StatusMethodNotAllowed && w.Code != http.StatusNotFound {
		t.Errorf("health POST status = %d, want 405 or 404", w.Code)
	}
}

func TestTokensEndpoint(t *testing.T) {
	t.Parallel()

	w := do(t, newTestServer(t), http.MethodGet, "/api/tokens", "")
	if w.Code != http.StatusOK {
		t.Fatalf("tokens status = %d", w.Code)
	}
	var body struct {
		Tokens []struct {
			Symbol  string `json:"symbol"`
			ChainID uint64 `json:"chainId"`
		} `json:"tokens"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal tokens: %v", err)
	}
	if body.Count != len(presets.Default()) || len(body.Tokens) != body.Count {
		t.Fatalf("count = %d, tokens = %d", body.Count, len(body.Tokens))
	}
	if body.Tokens[0].Symbol == "" {
		t.Fatal("token symbol missing")
	}
}

func TestTokensEndpoint_FilterByChain(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)

	w := do(t, h, http.MethodGet, "/api/tokens?chainId=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"count":0`) {
		t.Fatalf("mainnet has no presets, body: %s", w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/api/tokens?chainId=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad chainId status = %d, want 400", w.Code)
	}
}

func TestChainsEndpoint(t *testing.T) {
	t.Parallel()

	w := do(t, newTestServer(t), http.MethodGet, "/api/chains", "")
	if w.Code != http.StatusOK {
		t.Fatalf("chains status = %d", w.Code)
	}
	var body struct {
		Chains []struct {
			ID      uint64 `json:"id"`
			Name    string `json:"name"`
			Testnet bool   `json:"testnet"`
		} `json:"chains"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal chains: %v", err)
	}
	if len(body.Chains) != len(wallet.DefaultChains()) {
		t.Fatalf("chains = %d, want %d", len(body.Chains), len(wallet.DefaultChains()))
	}
}

func TestValidateEndpoint_Valid(t *testing.T) {
	t.Parallel()

	w := do(t, newTestServer(t), http.MethodPost, "/api/payload/validate",
		`{"payload": {"memo": "hello"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}
	var res payload.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !res.IsValid || res.Error != "" {
		t.Fatalf("result = %+v, want valid", res)
	}
}

func TestValidateEndpoint_Oversize(t *testing.T) {
	t.Parallel()

	memo := strings.Repeat("a", 2048)
	w := do(t, newTestServer(t), http.MethodPost, "/api/payload/validate",
		`{"payload": {"memo": "`+memo+`"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("oversize is a validation result, not a request error; status = %d", w.Code)
	}
	var res payload.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if res.IsValid {
		t.Fatal("2KB memo should exceed the 1KB server limit")
	}
	if !strings.Contains(res.Error, "(1.00KB)") {
		t.Fatalf("error = %q", res.Error)
	}
}

func TestValidateEndpoint_RequestLimitOverridesDefault(t *testing.T) {
	t.Parallel()

	memo := strings.Repeat("a", 2048)
	w := do(t, newTestServer(t), http.MethodPost, "/api/payload/validate",
		`{"payload": {"memo": "`+memo+`"}, "maxSizeKB": 5}`)

	var res payload.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !res.IsValid {
		t.Fatalf("result = %+v, want valid under a 5KB limit", res)
	}
}

func TestValidateEndpoint_BadRequests(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)
	cases := map[string]string{
		"not json":        `{payload`,
		"missing payload": `{"maxSizeKB": 3}`,
	}
	for name, body := range cases {
		w := do(t, h, http.MethodPost, "/api/payload/validate", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, w.Code)
		}
	}
}

func TestValidateEndpoint_BodyTooLarge(t *testing.T) {
	t.Parallel()

	memo := strings.Repeat("a", maxBodyBytes)
	w := do(t, newTestServer(t), http.MethodPost, "/api/payload/validate",
		`{"payload": "`+memo+`"}`)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
}

func TestGinRecovery(t *testing.T) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("panic recovery status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
