package di

import (
	"fmt"

	"github.com/Shanmugavel701/SNS-QA-Agent/internal/config"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/domain/analysis"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/gemini"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/handler"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/metrics"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/server"
)

// InitializeApp 은 애플리케이션 의존성을 초기화하고 App 인스턴스를 반환한다.
func InitializeApp() (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	metricsStore := metrics.NewStore()

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	geminiClient, err := gemini.NewClient(cfg, metricsStore)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	prompts, err := analysis.NewPrompts()
	if err != nil {
		return nil, fmt.Errorf("analysis prompts: %w", err)
	}

	analyzeHandler := handler.NewAnalyzeHandler(cfg, geminiClient, prompts, metricsStore, logger)

	router := handler.NewRouter(cfg, logger, analyzeHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg, metricsStore), nil
}
