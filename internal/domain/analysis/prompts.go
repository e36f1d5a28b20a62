package analysis

import (
	"embed"
	"fmt"
	"strings"

	"github.com/Shanmugavel701/SNS-QA-Agent/internal/prompt"
)

//go:embed prompts/*.yml
var promptsFS embed.FS

// 선택 필드가 비어 있을 때 프롬프트에 들어가는 문구
const (
	absentFieldSentinel    = "N/A"
	absentHashtagsSentinel = "None"
)

// Prompts 는 콘텐츠 분석 프롬프트 모음이다.
type Prompts struct {
	prompts map[string]map[string]string
}

// NewPrompts 는 분석 프롬프트를 로드한다.
func NewPrompts() (*Prompts, error) {
	loaded, err := prompt.LoadYAMLDir(promptsFS, "prompts")
	if err != nil {
		return nil, fmt.Errorf("load analysis prompts: %w", err)
	}
	return &Prompts{prompts: loaded}, nil
}

// System 은 분석 시스템 프롬프트를 반환한다.
func (p *Prompts) System() (string, error) {
	data, err := p.getPrompt("analyze")
	if err != nil {
		return "", err
	}
	return prompt.Field(data, "system", "analyze.system")
}

// User 는 요청 필드를 그대로 포함한 유저 프롬프트를 렌더링한다.
// 동일 입력은 항상 동일 출력을 만든다. 호출자 텍스트는 자르거나 재배열하지 않는다.
func (p *Prompts) User(req Request, mandatoryHashtags []string) (string, error) {
	data, err := p.getPrompt("analyze")
	if err != nil {
		return "", err
	}
	template, err := prompt.Field(data, "user", "analyze.user")
	if err != nil {
		return "", err
	}

	formatted, err := prompt.FormatTemplate(template, map[string]string{
		"mandatoryHashtags": strings.Join(mandatoryHashtags, ", "),
		"platform":          req.Platform,
		"title":             orSentinel(req.Title, absentFieldSentinel),
		"content":           req.Content,
		"existingHashtags":  formatHashtags(req.Hashtags),
		"geo":               orSentinel(req.Geo, absentFieldSentinel),
		"niche":             orSentinel(req.Niche, absentFieldSentinel),
		"targetAudience":    orSentinel(req.TargetAudience, absentFieldSentinel),
		"nicheLabel":        orSentinel(req.Niche, "the content"),
	})
	if err != nil {
		return "", fmt.Errorf("format analyze prompt: %w", err)
	}
	return formatted, nil
}

func (p *Prompts) getPrompt(name string) (map[string]string, error) {
	if p == nil || p.prompts == nil {
		return nil, fmt.Errorf("prompts not initialized")
	}
	data, ok := p.prompts[name]
	if !ok {
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}
	return data, nil
}

func orSentinel(value string, sentinel string) string {
	if strings.TrimSpace(value) == "" {
		return sentinel
	}
	return value
}

func formatHashtags(hashtags []string) string {
	if len(hashtags) == 0 {
		return absentHashtagsSentinel
	}
	return strings.Join(hashtags, ", ")
}
