package config

import "strings"

// GeminiConfig 는 Gemini 모델 설정이다.
type GeminiConfig struct {
	APIKeys         []string
	Model           string
	Temperature     float64
	MaxOutputTokens int
	TimeoutSeconds  int
}

// PrimaryKey 는 기본 API 키를 반환한다.
func (g GeminiConfig) PrimaryKey() string {
	if len(g.APIKeys) == 0 {
		return ""
	}
	return g.APIKeys[0]
}

// AnalysisConfig 는 콘텐츠 분석 설정이다.
type AnalysisConfig struct {
	MandatoryHashtags []string
}

// LoggingConfig: 로깅 설정입니다.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig: HTTP 서버 설정입니다.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
}

// HTTPAuthConfig: API 키 인증 설정입니다.
type HTTPAuthConfig struct {
	APIKey string
}

// CORSConfig 는 CORS 허용 설정이다.
type CORSConfig struct {
	AllowOrigins []string
}

// AllowAll 는 모든 오리진 허용 여부를 반환한다.
func (c CORSConfig) AllowAll() bool {
	for _, origin := range c.AllowOrigins {
		if strings.TrimSpace(origin) == "*" {
			return true
		}
	}
	return false
}

// StaticConfig 는 정적 파일 서빙 설정이다.
type StaticConfig struct {
	Dir string
}

// Config: 애플리케이션 전체 설정입니다.
type Config struct {
	Gemini   GeminiConfig
	Analysis AnalysisConfig
	Logging  LoggingConfig
	HTTP     HTTPConfig
	HTTPAuth HTTPAuthConfig
	CORS     CORSConfig
	Static   StaticConfig
}
