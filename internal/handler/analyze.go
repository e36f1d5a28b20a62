package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shanmugavel701/SNS-QA-Agent/internal/config"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/domain/analysis"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/gemini"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/metrics"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/middleware"
)

// LLMClient 는 분석 핸들러가 사용하는 텍스트 생성 클라이언트다.
type LLMClient interface {
	Generate(ctx context.Context, req gemini.Request) (string, string, error)
}

// AnalyzeResponse 는 분석 성공 응답 본문이다.
type AnalyzeResponse struct {
	RawJSON map[string]any `json:"raw_json"`
}

// AnalyzeHandler 는 콘텐츠 분석 API 핸들러다.
// 요청 간 공유 상태 없이 검증 → 프롬프트 → 호출 → 정제 → 해시태그 강제
// 순서로 처리한다.
type AnalyzeHandler struct {
	cfg     *config.Config
	client  LLMClient
	prompts *analysis.Prompts
	metrics *metrics.Store
	logger  *slog.Logger
}

// NewAnalyzeHandler 는 분석 핸들러를 생성한다.
func NewAnalyzeHandler(
	cfg *config.Config,
	client LLMClient,
	prompts *analysis.Prompts,
	metricsStore *metrics.Store,
	logger *slog.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:     cfg,
		client:  client,
		prompts: prompts,
		metrics: metricsStore,
		logger:  logger,
	}
}

// RegisterRoutes 는 분석 라우트를 등록한다.
func (h *AnalyzeHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/analyze", h.handleAnalyze)

	group := router.Group("/api/analysis")
	group.GET("/metrics", h.handleMetrics)
}

func (h *AnalyzeHandler) handleAnalyze(c *gin.Context) {
	var req analysis.Request
	if !bindJSON(c, &req) {
		return
	}

	systemPrompt, err := h.prompts.System()
	if err != nil {
		h.logError(c, err)
		writeError(c, err)
		return
	}
	userPrompt, err := h.prompts.User(req, h.cfg.Analysis.MandatoryHashtags)
	if err != nil {
		h.logError(c, err)
		writeError(c, err)
		return
	}

	raw, model, err := h.client.Generate(c.Request.Context(), gemini.Request{
		Prompt:       userPrompt,
		SystemPrompt: systemPrompt,
	})
	if err != nil {
		h.logError(c, err)
		writeError(c, err)
		return
	}

	parsed, err := analysis.SanitizeModelOutput(raw)
	if err != nil {
		h.logError(c, err)
		writeError(c, err)
		return
	}

	result := analysis.EnforceMandatoryHashtags(parsed, h.cfg.Analysis.MandatoryHashtags)
	h.logResult(c, req, model, result)

	c.JSON(http.StatusOK, AnalyzeResponse{RawJSON: result})
}

func (h *AnalyzeHandler) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}

func (h *AnalyzeHandler) logResult(c *gin.Context, req analysis.Request, model string, result map[string]any) {
	summary, err := analysis.Summarize(result)
	if err != nil {
		// 요약은 로깅 편의일 뿐이다. 실패해도 응답에는 영향이 없다.
		h.logger.Debug("analysis_summary_skipped", "err", err)
		return
	}

	h.logger.Info(
		"analysis_completed",
		"request_id", middleware.GetRequestID(c),
		"platform", req.Platform,
		"model", model,
		"overall_score", summary.OverallScore,
		"final_pack_size", len(summary.FinalOutput.FinalHashtagPack),
		"suggested_size", len(summary.Hashtags.SuggestedReplacements),
	)
}

func (h *AnalyzeHandler) logError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	h.logger.Warn("analysis_failed", "request_id", middleware.GetRequestID(c), "err", err)
}
