package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/Shanmugavel701/SNS-QA-Agent/internal/config"
)

func TestHealthRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Gemini: config.GeminiConfig{
			APIKeys:         nil,
			Model:           "gemini-2.5-flash",
			MaxOutputTokens: 2048,
			TimeoutSeconds:  60,
		},
		HTTP: config.HTTPConfig{HTTP2Enabled: true},
	}

	router := gin.New()
	RegisterHealthRoutes(router, cfg)

	// /health 는 자격 증명이 없어도 항상 200을 반환한다.
	liveReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	liveResp := httptest.NewRecorder()
	router.ServeHTTP(liveResp, liveReq)
	if liveResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", liveResp.Code)
	}
	if !strings.Contains(liveResp.Body.String(), "degraded") {
		t.Fatalf("expected degraded component in body: %s", liveResp.Body.String())
	}

	// 자격 증명이 없으면 ready 는 degraded 를 보고한다.
	readyReq := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	readyResp := httptest.NewRecorder()
	router.ServeHTTP(readyResp, readyReq)
	if readyResp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", readyResp.Code)
	}

	modelReq := httptest.NewRequest(http.MethodGet, "/health/models", nil)
	modelResp := httptest.NewRecorder()
	router.ServeHTTP(modelResp, modelReq)
	if modelResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", modelResp.Code)
	}

	var payload ModelConfigResponse
	if err := json.Unmarshal(modelResp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected model: %+v", payload)
	}
	if payload.Transport != "h2c" {
		t.Fatalf("expected h2c, got %s", payload.Transport)
	}
}

func TestHealthReadyOKWithKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Gemini: config.GeminiConfig{
			APIKeys: []string{"test-key"},
			Model:   "gemini-2.5-flash",
		},
	}

	router := gin.New()
	RegisterHealthRoutes(router, cfg)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
