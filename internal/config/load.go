package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// defaultMandatoryHashtags 는 모든 분석 결과에 반드시 포함되는 해시태그다.
var defaultMandatoryHashtags = []string{
	"#snssquare",
	"#snsihub",
	"#snsdesignthinking",
	"#designthinkers",
}

// Load 는 환경 변수 기반 설정을 로드한다.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig 는 설정을 로드하고 검증한다.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 는 설정 유효성을 검사한다.
// API 키 누락은 여기서 실패시키지 않는다. 키 없는 상태로 기동하고
// /analyze 는 503을 반환한다.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.Gemini.Model) == "" {
		return errors.New("gemini model required")
	}
	if c.Gemini.MaxOutputTokens <= 0 {
		return fmt.Errorf("invalid max output tokens: %d", c.Gemini.MaxOutputTokens)
	}
	if c.Gemini.Temperature < 0 {
		return fmt.Errorf("invalid temperature: %f", c.Gemini.Temperature)
	}
	if len(c.Analysis.MandatoryHashtags) == 0 {
		return errors.New("mandatory hashtags required")
	}
	for _, tag := range c.Analysis.MandatoryHashtags {
		if !strings.HasPrefix(tag, "#") {
			return fmt.Errorf("mandatory hashtag must start with '#': %s", tag)
		}
	}
	return nil
}

// LogEnvStatus 는 환경 설정 상태를 로그로 남긴다.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	envFilePresent := fileExists(".env")
	primaryKey := maskSecret(cfg.Gemini.PrimaryKey())
	logger.Debug(
		"env_status",
		"env_file", envFilePresent,
		"gemini_keys", len(cfg.Gemini.APIKeys),
		"primary_key", primaryKey,
		"model", cfg.Gemini.Model,
		"temperature", cfg.Gemini.Temperature,
		"max_tokens", cfg.Gemini.MaxOutputTokens,
		"timeout", cfg.Gemini.TimeoutSeconds,
		"mandatory_hashtags", len(cfg.Analysis.MandatoryHashtags),
	)

	if len(cfg.Gemini.APIKeys) == 0 {
		logger.Warn("env_missing_gemini_api_key")
	}
}

func buildConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			APIKeys:         parseAPIKeys(),
			Model:           getEnvString("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature:     getEnvFloat("GEMINI_TEMPERATURE", 0),
			MaxOutputTokens: getEnvInt("GEMINI_MAX_TOKENS", 2048),
			TimeoutSeconds:  getEnvInt("GEMINI_TIMEOUT", 60),
		},
		Analysis: AnalysisConfig{
			MandatoryHashtags: getEnvList("MANDATORY_HASHTAGS", defaultMandatoryHashtags),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "127.0.0.1"),
			Port:         getEnvInt("HTTP_PORT", 8000),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", true),
		},
		HTTPAuth: HTTPAuthConfig{
			APIKey: getEnvString("HTTP_API_KEY", ""),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Static: StaticConfig{
			Dir: getEnvString("STATIC_DIR", "web"),
		},
	}
}

func maskSecret(value string) string {
	if value == "" {
		return "<missing>"
	}
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return value[:2] + "***" + value[len(value)-2:]
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
