package analysis

import (
	"reflect"
	"testing"
)

var testMandatory = []string{"#snssquare", "#snsihub", "#snsdesignthinking", "#designthinkers"}

func stringItems(t *testing.T, value any) []string {
	t.Helper()
	list, ok := value.([]any)
	if !ok {
		t.Fatalf("expected list, got %T", value)
	}
	items := make([]string, 0, len(list))
	for _, item := range list {
		text, ok := item.(string)
		if !ok {
			t.Fatalf("expected string item, got %T", item)
		}
		items = append(items, text)
	}
	return items
}

func TestEnforceAppendsMissing(t *testing.T) {
	data := map[string]any{
		"final_output": map[string]any{
			"final_hashtag_pack": []any{"#cool"},
		},
		"hashtags": map[string]any{
			"suggested_replacements": []any{},
		},
		"overall_score": float64(88),
	}

	result := EnforceMandatoryHashtags(data, testMandatory)

	pack := stringItems(t, result["final_output"].(map[string]any)["final_hashtag_pack"])
	expected := []string{"#cool", "#snssquare", "#snsihub", "#snsdesignthinking", "#designthinkers"}
	if !reflect.DeepEqual(pack, expected) {
		t.Fatalf("unexpected final pack: %+v", pack)
	}

	suggested := stringItems(t, result["hashtags"].(map[string]any)["suggested_replacements"])
	if !reflect.DeepEqual(suggested, testMandatory) {
		t.Fatalf("unexpected suggestions: %+v", suggested)
	}

	// 나머지 키는 그대로 통과해야 한다.
	if result["overall_score"] != float64(88) {
		t.Fatalf("expected passthrough keys untouched")
	}
}

func TestEnforceMissingSections(t *testing.T) {
	result := EnforceMandatoryHashtags(map[string]any{}, testMandatory)

	pack := stringItems(t, result["final_output"].(map[string]any)["final_hashtag_pack"])
	if !reflect.DeepEqual(pack, testMandatory) {
		t.Fatalf("unexpected final pack: %+v", pack)
	}
	suggested := stringItems(t, result["hashtags"].(map[string]any)["suggested_replacements"])
	if !reflect.DeepEqual(suggested, testMandatory) {
		t.Fatalf("unexpected suggestions: %+v", suggested)
	}
}

func TestEnforceCaseInsensitive(t *testing.T) {
	data := map[string]any{
		"final_output": map[string]any{
			"final_hashtag_pack": []any{"#SNSSquare", "#first"},
		},
	}

	result := EnforceMandatoryHashtags(data, testMandatory)

	pack := stringItems(t, result["final_output"].(map[string]any)["final_hashtag_pack"])
	// 기존 표기 #SNSSquare 는 유지되고 #snssquare 는 다시 추가되지 않는다.
	expected := []string{"#SNSSquare", "#first", "#snsihub", "#snsdesignthinking", "#designthinkers"}
	if !reflect.DeepEqual(pack, expected) {
		t.Fatalf("unexpected final pack: %+v", pack)
	}
}

func TestEnforceIdempotent(t *testing.T) {
	data := map[string]any{
		"final_output": map[string]any{
			"final_hashtag_pack": []any{"#cool"},
		},
		"hashtags": map[string]any{
			"suggested_replacements": []any{"#Designthinkers"},
		},
	}

	once := EnforceMandatoryHashtags(data, testMandatory)
	firstPack := append([]string(nil), stringItems(t, once["final_output"].(map[string]any)["final_hashtag_pack"])...)
	firstSuggested := append([]string(nil), stringItems(t, once["hashtags"].(map[string]any)["suggested_replacements"])...)

	twice := EnforceMandatoryHashtags(once, testMandatory)
	secondPack := stringItems(t, twice["final_output"].(map[string]any)["final_hashtag_pack"])
	secondSuggested := stringItems(t, twice["hashtags"].(map[string]any)["suggested_replacements"])

	if !reflect.DeepEqual(firstPack, secondPack) {
		t.Fatalf("enforcement not idempotent: %v vs %v", firstPack, secondPack)
	}
	if !reflect.DeepEqual(firstSuggested, secondSuggested) {
		t.Fatalf("enforcement not idempotent: %v vs %v", firstSuggested, secondSuggested)
	}
}

func TestEnforceOrderPreserved(t *testing.T) {
	data := map[string]any{
		"hashtags": map[string]any{
			"suggested_replacements": []any{"#zeta", "#alpha", "#snsihub"},
		},
	}

	result := EnforceMandatoryHashtags(data, testMandatory)

	suggested := stringItems(t, result["hashtags"].(map[string]any)["suggested_replacements"])
	expected := []string{"#zeta", "#alpha", "#snsihub", "#snssquare", "#snsdesignthinking", "#designthinkers"}
	if !reflect.DeepEqual(suggested, expected) {
		t.Fatalf("unexpected order: %+v", suggested)
	}
}

func TestEnforceNonListTarget(t *testing.T) {
	data := map[string]any{
		"final_output": map[string]any{
			"final_hashtag_pack": "not a list",
		},
	}

	result := EnforceMandatoryHashtags(data, testMandatory)

	pack := stringItems(t, result["final_output"].(map[string]any)["final_hashtag_pack"])
	if !reflect.DeepEqual(pack, testMandatory) {
		t.Fatalf("unexpected final pack: %+v", pack)
	}
}

func TestEnforceNilData(t *testing.T) {
	result := EnforceMandatoryHashtags(nil, testMandatory)
	if result == nil {
		t.Fatalf("expected non-nil result")
	}
	pack := stringItems(t, result["final_output"].(map[string]any)["final_hashtag_pack"])
	if !reflect.DeepEqual(pack, testMandatory) {
		t.Fatalf("unexpected final pack: %+v", pack)
	}
}
