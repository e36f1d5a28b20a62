package di

import (
	"log/slog"
	"net/http"

	"github.com/Shanmugavel701/SNS-QA-Agent/internal/config"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/metrics"
)

// App: 애플리케이션 구성 요소를 묶는다.
type App struct {
	Server  *http.Server
	Logger  *slog.Logger
	Config  *config.Config
	Metrics *metrics.Store
}

// NewApp: App 인스턴스를 생성합니다.
func NewApp(
	server *http.Server,
	logger *slog.Logger,
	cfg *config.Config,
	metricsStore *metrics.Store,
) *App {
	return &App{
		Server:  server,
		Logger:  logger,
		Config:  cfg,
		Metrics: metricsStore,
	}
}
