package document

import (
	"testing"
)

const sampleJSON = `{
  "id": "https://example.org/object/1",
  "identified_by": [
    {"type": "Name", "content": "  Irises  ", "@language": "en"},
    {"type": "Name", "content": "Irissen", "@language": "nl"},
    {"type": "Identifier", "content": "90.PA.20"}
  ],
  "dimension": [{"value": 71}],
  "produced_by": {"carried_out_by": [{"_label": "Vincent van Gogh"}, {"_label": "Studio"}]},
  "empty": null
}`

func mustJSON(t *testing.T, s string) Node {
	t.Helper()
	n, err := ParseJSON([]byte(s))
	if err != nil {
		t.Fatalf("Error parsing JSON: %v", err)
	}
	return n
}

func TestJSONGetFlattensArrays(t *testing.T) {
	root := mustJSON(t, sampleJSON)

	names := root.Get("produced_by/carried_out_by/_label")
	if len(names) != 2 {
		t.Fatalf("Expected 2 labels, got %d", len(names))
	}
	if names[0].Value() != "Vincent van Gogh" || names[1].Value() != "Studio" {
		t.Errorf("Unexpected labels %q, %q", names[0].Value(), names[1].Value())
	}
	if got := root.Attr("id"); got != "https://example.org/object/1" {
		t.Errorf("Expected id, got %q", got)
	}
	if got := Attr(First(root, "dimension"), "value"); got != "71" {
		t.Errorf("Expected numeric value 71, got %q", got)
	}
	if root.Get("empty") != nil || root.Get("missing/thing") != nil {
		t.Error("Expected no matches for null or missing members")
	}
	if !IsObject(root) {
		t.Error("Expected root to be an object")
	}
}

func TestParseJSONInvalid(t *testing.T) {
	if _, err := ParseJSON([]byte(`{"id": `)); err == nil {
		t.Error("Expected error for truncated JSON")
	}
}

func TestElements(t *testing.T) {
	root := mustJSON(t, `[{"id": "a"}, {"id": "b"}]`)
	elems := Elements(root)
	if len(elems) != 2 || elems[1].Attr("id") != "b" {
		t.Errorf("Expected two elements, got %d", len(elems))
	}
	if Elements(mustJSON(t, `{"id": "a"}`)) != nil {
		t.Error("Expected nil elements for an object")
	}
}

func TestPickLanguagePreference(t *testing.T) {
	root := mustJSON(t, `{"title": [
	  {"@value": "Irises", "@language": "en"},
	  {"@value": "   ", "@language": "de"},
	  {"@value": "Irissen", "@language": "nl"}
	]}`)
	titles := root.Get("title")

	tests := []struct {
		name  string
		langs []string
		want  string
	}{
		{"exact match", []string{"nl"}, "Irissen"},
		{"blank match is skipped", []string{"de", "nl"}, "Irissen"},
		{"no preference uses first", nil, "Irises"},
		{"unmatched falls back to first", []string{"fr"}, "Irises"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pick(titles, tt.langs...); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPickBlankFirstIsAbsent(t *testing.T) {
	root := mustJSON(t, `{"title": [{"@value": " ", "@language": "de"}, {"@value": "Later"}]}`)
	if got := Text(root, "title", "fr"); got != "" {
		t.Errorf("Expected absent value, got %q", got)
	}
	if got := Text(root, "title"); got != "" {
		t.Errorf("Expected absent value, got %q", got)
	}
}

func TestIdentifiedByContent(t *testing.T) {
	root := mustJSON(t, sampleJSON)
	if got := Text(root, "identified_by/content"); got != "Irises" {
		t.Errorf("Expected trimmed first content, got %q", got)
	}
	if got := Texts(root, "identified_by/content"); len(got) != 3 {
		t.Errorf("Expected 3 contents, got %v", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", " b ", "c"); got != "b" {
		t.Errorf("Expected b, got %q", got)
	}
	if got := FirstNonEmpty(); got != "" {
		t.Errorf("Expected empty, got %q", got)
	}
}

func TestJoin(t *testing.T) {
	if got := JoinLabels([]string{"paintings", "", "paintings", "oil"}); got != "paintings | paintings | oil" {
		t.Errorf("Unexpected join %q", got)
	}
	if got := JoinList([]string{"canvas", " oil paint "}); got != "canvas, oil paint" {
		t.Errorf("Unexpected join %q", got)
	}
	if got := JoinList(nil); got != "" {
		t.Errorf("Expected empty join, got %q", got)
	}
}

func TestSameLanguage(t *testing.T) {
	tests := []struct {
		tag, want string
		match     bool
	}{
		{"en", "en", true},
		{"EN", "en", true},
		{"en-gb", "en-GB", true},
		{"en-GB", "en", false},
		{"", "en", false},
		{"nl", "en", false},
	}
	for _, tt := range tests {
		if got := SameLanguage(tt.tag, tt.want); got != tt.match {
			t.Errorf("SameLanguage(%q, %q): expected %v, got %v", tt.tag, tt.want, tt.match, got)
		}
	}
}

func TestNilNodeHelpers(t *testing.T) {
	if First(nil, "x") != nil || All(nil, "x") != nil {
		t.Error("Expected nil results for nil node")
	}
	if Text(nil, "x", "en") != "" || Attr(nil, "id") != "" || Value(nil) != "" {
		t.Error("Expected empty strings for nil node")
	}
}
