package analysis

import (
	"strings"
	"testing"
)

func newTestPrompts(t *testing.T) *Prompts {
	t.Helper()
	prompts, err := NewPrompts()
	if err != nil {
		t.Fatalf("failed to load prompts: %v", err)
	}
	return prompts
}

func TestPromptsSystem(t *testing.T) {
	prompts := newTestPrompts(t)
	system, err := prompts.System()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(system, "QA Agent") {
		t.Fatalf("unexpected system prompt: %s", system)
	}
}

func TestPromptsUserEmbedsFields(t *testing.T) {
	prompts := newTestPrompts(t)
	req := Request{
		Platform:       "instagram",
		Content:        "Check out our new product!",
		Title:          "Launch",
		Hashtags:       []string{"#one", "#two"},
		Geo:            "KR",
		Niche:          "design",
		TargetAudience: "designers",
	}

	rendered, err := prompts.User(req, testMandatory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Platform: instagram",
		"Title: Launch",
		"Content: Check out our new product!",
		"Existing Hashtags: #one, #two",
		"Geo: KR",
		"Niche: design",
		"Target Audience: designers",
		"relevant to design",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("prompt missing %q:\n%s", want, rendered)
		}
	}

	for _, tag := range testMandatory {
		if !strings.Contains(rendered, tag) {
			t.Fatalf("prompt missing mandatory hashtag %q", tag)
		}
	}

	// 출력 스키마 설명이 그대로 들어가야 한다.
	for _, want := range []string{"overall_score (0-100)", "final_hashtag_pack", "suggested_replacements"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("prompt missing schema description %q", want)
		}
	}
}

func TestPromptsUserSentinels(t *testing.T) {
	prompts := newTestPrompts(t)
	req := Request{Platform: "blog", Content: "hello"}

	rendered, err := prompts.User(req, testMandatory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Title: N/A",
		"Existing Hashtags: None",
		"Geo: N/A",
		"Niche: N/A",
		"Target Audience: N/A",
		"relevant to the content",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("prompt missing sentinel %q:\n%s", want, rendered)
		}
	}
}

func TestPromptsUserDeterministic(t *testing.T) {
	prompts := newTestPrompts(t)
	req := Request{Platform: "youtube", Content: "video description"}

	first, err := prompts.User(req, testMandatory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := prompts.User(req, testMandatory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected deterministic rendering")
	}
}

func TestPromptsUserKeepsBraces(t *testing.T) {
	// 호출자 텍스트의 중괄호는 템플릿 문법으로 해석되면 안 된다.
	prompts := newTestPrompts(t)
	req := Request{Platform: "blog", Content: "code sample: {x}"}

	rendered, err := prompts.User(req, testMandatory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rendered, "code sample: {x}") {
		t.Fatalf("caller braces mangled:\n%s", rendered)
	}
}
