package anomaly

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupAnomalyRouter(t *testing.T, scorer Scorer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewHandler(New(WithScorer(scorer)))
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeEndpointMissingCargas(t *testing.T) {
	router := setupAnomalyRouter(t, &stubScorer{})

	cases := []struct {
		name string
		body string
	}{
		{name: "empty_object", body: `{}`},
		{name: "wrong_key", body: `{"entregas": []}`},
		{name: "not_json", body: `cargas`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, router, "/api/v1/anomalias", tc.body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.Code)
			}
		})
	}
}

func TestAnalyzeEndpointReturnsResult(t *testing.T) {
	router := setupAnomalyRouter(t, &stubScorer{
		outliers: []bool{false, false, false, false, false, true},
		scores:   []float64{-0.1, -0.12, -0.11, -0.1, -0.1, -0.9},
	})

	body := `{"cargas": [
		{"ID_CARGAS": 1, "CARGAS_VALOR": 100},
		{"ID_CARGAS": 2, "CARGAS_VALOR": 102},
		{"ID_CARGAS": 3, "CARGAS_VALOR": 98},
		{"ID_CARGAS": 4, "CARGAS_VALOR": 101},
		{"ID_CARGAS": 5, "CARGAS_VALOR": 99},
		{"ID_CARGAS": 6, "CARGAS_VALOR": "5000"}
	]}`

	resp := postJSON(t, router, "/api/v1/anomalias", body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.TotalAnomalies != 1 {
		t.Fatalf("expected one anomaly, got %d", result.TotalAnomalies)
	}
	if result.Anomalies[0].Type != TypeVeryHigh {
		t.Fatalf("expected MUITO_ALTO, got %s", result.Anomalies[0].Type)
	}
}

func TestAnalyzeEndpointInsufficientBatch(t *testing.T) {
	router := setupAnomalyRouter(t, &stubScorer{})

	resp := postJSON(t, router, "/api/v1/anomalias", `{"cargas": [{"ID_CARGAS": 1, "CARGAS_VALOR": 10}]}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Warning == "" {
		t.Fatalf("expected insufficient-records warning")
	}
	if result.Stats != nil {
		t.Fatalf("expected null statistics")
	}
}

func TestHistoryEndpoint(t *testing.T) {
	router := setupAnomalyRouter(t, &stubScorer{
		outliers: []bool{false, false, false},
		scores:   []float64{-0.1, -0.2, -0.3},
	})

	history, err := json.Marshal(historyRecords(10, 10000))
	if err != nil {
		t.Fatalf("marshal history: %v", err)
	}
	body := `{"cargas": [
		{"ID_CARGAS": "a", "CARGAS_VALOR": 9000},
		{"ID_CARGAS": "b", "CARGAS_VALOR": 9500},
		{"ID_CARGAS": "c", "CARGAS_VALOR": 25000}
	], "historico": ` + string(history) + `}`

	resp := postJSON(t, router, "/api/v1/anomalias/historico", body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.History == nil {
		t.Fatalf("expected historical comparison in response")
	}
	if result.TotalAnomalies != 1 || result.Anomalies[0].Type != TypeOutOfRange {
		t.Fatalf("expected one FORA_DO_HISTORICO anomaly, got %+v", result.Anomalies)
	}
	if result.Anomalies[0].Severity != 90 {
		t.Fatalf("expected severity 90, got %d", result.Anomalies[0].Severity)
	}
}
