package handler

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Shanmugavel701/SNS-QA-Agent/internal/config"
)

// 정적 디렉터리에서 직접 노출하는 파일 목록
var staticFiles = map[string]string{
	"/":           "index.html",
	"/script.js":  "script.js",
	"/styles.css": "styles.css",
	"/logo.png":   "logo.png",
}

// registerStaticRoutes 는 웹 UI 정적 파일 라우트를 등록한다.
// 디렉터리가 없으면 API 전용 모드로 동작한다.
func registerStaticRoutes(router *gin.Engine, cfg *config.StaticConfig) {
	if cfg == nil || cfg.Dir == "" {
		return
	}
	if info, err := os.Stat(cfg.Dir); err != nil || !info.IsDir() {
		return
	}

	for route, name := range staticFiles {
		path := filepath.Join(cfg.Dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		router.StaticFile(route, path)
	}
}
