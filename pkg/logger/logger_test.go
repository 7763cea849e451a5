package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNewJSONAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Output: &buf, Level: LevelInfo, Format: "json"}).WithComponent("orders")

	log.Info("order created", "order_id", 4)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "orders" {
		t.Errorf("component = %v, want orders", entry["component"])
	}
	if entry["order_id"] != float64(4) {
		t.Errorf("order_id = %v, want 4", entry["order_id"])
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Output: &buf, Level: LevelWarn})

	log.Debug("hidden")
	log.Info("hidden")

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestErrorAddsCaller(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Output: &buf, Level: LevelInfo, Format: "text", EnableCaller: true})

	log.Error("boom")

	if !strings.Contains(buf.String(), "caller=logger_test.go:") {
		t.Fatalf("caller missing from %q", buf.String())
	}
}

func TestDefaultConfig(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Output = &buf

	New(config).Error("payment failed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["environment"] != "development" {
		t.Errorf("environment = %v, want development", entry["environment"])
	}
	if caller, _ := entry["caller"].(string); !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %v, want logger_test.go:<line>", entry["caller"])
	}
}

func TestGinMiddlewareSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := New(Config{Output: &buf, Level: LevelInfo})

	router := gin.New()
	router.Use(log.GinMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatal("expected a generated request id header")
	}
	if !strings.Contains(buf.String(), `"status_code":200`) {
		t.Fatalf("request log missing status: %q", buf.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("request id = %q, want abc-123", got)
	}
}
