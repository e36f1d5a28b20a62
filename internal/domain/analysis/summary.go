package analysis

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Summary 는 분석 결과의 알려진 필드만 추린 요약이다. 로깅용이며
// 응답 본문에는 영향을 주지 않는다.
type Summary struct {
	OverallScore int `json:"overall_score"`
	FinalOutput  struct {
		FinalHashtagPack []string `json:"final_hashtag_pack"`
	} `json:"final_output"`
	Hashtags struct {
		SuggestedReplacements []string `json:"suggested_replacements"`
	} `json:"hashtags"`
}

// Summarize 는 결과 맵에서 알려진 필드를 약타입 디코딩한다.
// 모델이 점수를 실수로 내보내도 허용한다.
func Summarize(data map[string]any) (Summary, error) {
	var summary Summary
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &summary,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Summary{}, fmt.Errorf("new decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return Summary{}, fmt.Errorf("decode summary: %w", err)
	}
	return summary, nil
}
