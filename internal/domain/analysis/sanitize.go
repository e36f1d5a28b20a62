package analysis

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// excerptMaxBytes 는 진단용으로 보존하는 원문 접두 길이다.
const excerptMaxBytes = 160

// MalformedOutputError 는 모델 출력이 JSON 으로 파싱되지 않을 때 반환된다.
// Excerpt 는 진단용 원문 접두이며 제어 흐름에 쓰이지 않는다.
type MalformedOutputError struct {
	Excerpt string
	Err     error
}

// Error 는 오류 메시지를 반환한다.
func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("invalid model output: %v (excerpt: %q)", e.Err, e.Excerpt)
}

// Unwrap 는 원인 오류를 반환한다.
func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// SanitizeModelOutput 는 비신뢰 모델 출력에서 포맷 래퍼를 제거하고
// 단일 JSON 객체로 파싱한다. 파싱 실패 시 부분 복구 없이 실패한다.
func SanitizeModelOutput(raw string) (map[string]any, error) {
	cleaned := StripFences(raw)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, &MalformedOutputError{Excerpt: excerpt(cleaned), Err: err}
	}
	return parsed, nil
}

// StripFences 는 마크다운 코드 펜스만 제거한다. 의미 내용은 바꾸지 않는다.
func StripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)

	switch {
	case hasFoldPrefix(cleaned, "```json"):
		cleaned = strings.TrimSpace(cleaned[len("```json"):])
	case strings.HasPrefix(cleaned, "```"):
		cleaned = strings.TrimSpace(cleaned[len("```"):])
	}

	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSpace(cleaned[:len(cleaned)-len("```")])
	}

	return cleaned
}

func hasFoldPrefix(value string, prefix string) bool {
	return len(value) >= len(prefix) && strings.EqualFold(value[:len(prefix)], prefix)
}

func excerpt(value string) string {
	if len(value) <= excerptMaxBytes {
		return value
	}
	return value[:excerptMaxBytes]
}
