package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shanmugavel701/SNS-QA-Agent/internal/config"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/health"
)

// ModelConfigResponse 는 모델 구성 조회 응답이다.
type ModelConfigResponse struct {
	Model           string  `json:"model"`
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"max_output_tokens"`
	TimeoutSeconds  int     `json:"timeout_seconds"`
	Transport       string  `json:"transport"`
}

// RegisterHealthRoutes 는 헬스 체크 라우트를 등록한다.
// /health 는 프로세스 생존만 보고하고, /health/ready 는 자격 증명까지 확인한다.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config) {
	router.GET("/health", func(c *gin.Context) {
		// Liveness: 자격 증명 상태로 인해 다운 판정되지 않도록 항상 200을 반환합니다.
		c.JSON(http.StatusOK, health.Collect(cfg))
	})

	router.GET("/health/ready", func(c *gin.Context) {
		report := health.Collect(cfg)
		status := http.StatusOK
		if report.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, report)
	})

	router.GET("/health/models", func(c *gin.Context) {
		c.JSON(http.StatusOK, buildModelConfig(cfg))
	})
}

func buildModelConfig(cfg *config.Config) ModelConfigResponse {
	transport := "http/1.1"
	if cfg.HTTP.HTTP2Enabled {
		transport = "h2c"
	}
	return ModelConfigResponse{
		Model:           cfg.Gemini.Model,
		Temperature:     cfg.Gemini.Temperature,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		TimeoutSeconds:  cfg.Gemini.TimeoutSeconds,
		Transport:       transport,
	}
}
