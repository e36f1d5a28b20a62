package analysis

import "strings"

// 필수 해시태그가 강제되는 두 대상 시퀀스 경로
const (
	finalOutputKey      = "final_output"
	finalHashtagPackKey = "final_hashtag_pack"
	hashtagsKey         = "hashtags"
	suggestedKey        = "suggested_replacements"
)

// EnforceMandatoryHashtags 는 파싱된 분석 결과의 두 해시태그 시퀀스에
// 필수 해시태그가 모두 포함되도록 보장한다.
// 기존 항목의 순서와 표기는 유지하고, 누락분만 설정 순서대로 뒤에 붙인다.
// 중복 판정은 대소문자를 무시한다. 연산은 멱등이다.
func EnforceMandatoryHashtags(data map[string]any, mandatory []string) map[string]any {
	if data == nil {
		data = make(map[string]any)
	}

	finalOutput := ensureSection(data, finalOutputKey)
	finalOutput[finalHashtagPackKey] = appendMissing(finalOutput[finalHashtagPackKey], mandatory)

	hashtags := ensureSection(data, hashtagsKey)
	hashtags[suggestedKey] = appendMissing(hashtags[suggestedKey], mandatory)

	return data
}

// ensureSection 는 중첩 맵 섹션을 보장한다. 맵이 아닌 값은 맵으로 교체한다.
func ensureSection(data map[string]any, key string) map[string]any {
	if section, ok := data[key].(map[string]any); ok {
		return section
	}
	section := make(map[string]any)
	data[key] = section
	return section
}

func appendMissing(target any, mandatory []string) []any {
	existing := toList(target)

	seen := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		if text, ok := item.(string); ok {
			seen[strings.ToLower(text)] = struct{}{}
		}
	}

	for _, tag := range mandatory {
		if _, ok := seen[strings.ToLower(tag)]; ok {
			continue
		}
		existing = append(existing, tag)
		seen[strings.ToLower(tag)] = struct{}{}
	}

	return existing
}

// toList 는 대상 시퀀스를 []any 로 정규화한다. 부재하거나 시퀀스가
// 아니면 빈 시퀀스로 취급한다.
func toList(target any) []any {
	switch value := target.(type) {
	case []any:
		return value
	case []string:
		items := make([]any, 0, len(value))
		for _, item := range value {
			items = append(items, item)
		}
		return items
	default:
		return []any{}
	}
}
