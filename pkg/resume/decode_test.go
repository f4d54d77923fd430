package resume

import (
	"testing"

	"github.com/resumeforge/resumeforge/pkg/errors"
)

func mustDecode(t *testing.T, src string) *Mapping {
	t.Helper()
	root, err := Decode([]byte(src), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return root
}

func TestDecodeYAMLPreservesOrder(t *testing.T) {
	root := mustDecode(t, `
skills:
  Systems: [Go, Rust]
  Analytics: [Python]
  Leadership: [Mentoring]
`)
	v, ok := root.Get("skills")
	if !ok {
		t.Fatal("skills missing")
	}
	m, ok := v.(*Mapping)
	if !ok {
		t.Fatalf("skills = %T, want *Mapping", v)
	}
	want := []string{"Systems", "Analytics", "Leadership"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDecodeYAMLScalarTypes(t *testing.T) {
	root := mustDecode(t, `
year: 2020
gpa: 3.8
present: true
empty:
name: Ada
date: 2020-01-15
`)
	tests := []struct {
		key  string
		want any
	}{
		{"year", int64(2020)},
		{"gpa", 3.8},
		{"present", true},
		{"empty", nil},
		{"name", "Ada"},
		{"date", "2020-01-15"}, // timestamps stay as source text
	}
	for _, tt := range tests {
		v, ok := root.Get(tt.key)
		if !ok {
			t.Errorf("%s missing", tt.key)
			continue
		}
		if v != tt.want {
			t.Errorf("%s = %#v (%T), want %#v", tt.key, v, v, tt.want)
		}
	}
}

func TestDecodeYAMLAnchors(t *testing.T) {
	root := mustDecode(t, `
defaults: &loc Remote
experience:
  - location: *loc
`)
	v, _ := root.Get("experience")
	entries := v.([]any)
	entry := entries[0].(*Mapping)
	loc, _ := entry.Get("location")
	if loc != "Remote" {
		t.Errorf("aliased location = %v, want Remote", loc)
	}
}

func TestDecodeJSON(t *testing.T) {
	root, err := Decode([]byte(`{"personal": {"name": "Ada"}, "skills": ["Go", "Python"]}`), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	v, _ := root.Get("personal")
	name, _ := v.(*Mapping).Get("name")
	if name != "Ada" {
		t.Errorf("name = %v, want Ada", name)
	}
	sv, _ := root.Get("skills")
	if len(sv.([]any)) != 2 {
		t.Errorf("skills length = %d, want 2", len(sv.([]any)))
	}
}

func TestDecodeTOMLPreservesOrder(t *testing.T) {
	input := `
[personal]
name = "Ada"

[skills]
systems = ["Go", "Rust"]
analytics = ["Python"]
leadership = "Mentoring"
`
	root, err := Decode([]byte(input), FormatTOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	v, ok := root.Get("skills")
	if !ok {
		t.Fatal("skills missing")
	}
	got := v.(*Mapping).Keys()
	want := []string{"systems", "analytics", "leadership"}
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDecodeTOMLArrayOfTables(t *testing.T) {
	input := `
[personal]
name = "Ada"

[[experience]]
title = "Engineer"
company = "Initech"

[[experience]]
title = "Analyst"
`
	root, err := Decode([]byte(input), FormatTOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	v, _ := root.Get("experience")
	entries, ok := v.([]any)
	if !ok || len(entries) != 2 {
		t.Fatalf("experience = %#v, want 2 entries", v)
	}
	first := entries[0].(*Mapping)
	if title, _ := first.Get("title"); title != "Engineer" {
		t.Errorf("title = %v, want Engineer", title)
	}
}

func TestDecodeParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"yaml unclosed flow", "personal: [unclosed", FormatYAML},
		{"yaml tab indent", "personal:\n\tname: Ada", FormatYAML},
		{"toml garbage", "= not toml", FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), tt.format)
			if err == nil {
				t.Fatal("expected parse error")
			}
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("code = %v, want PARSE_ERROR", errors.GetCode(err))
			}
		})
	}
}

func TestDecodeTopLevelList(t *testing.T) {
	_, err := Decode([]byte("- a\n- b\n"), FormatYAML)
	if !errors.Is(err, errors.ErrCodeValidation) {
		t.Errorf("code = %v, want VALIDATION_ERROR", errors.GetCode(err))
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	root, err := Decode(nil, FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if root.Len() != 0 {
		t.Errorf("Len() = %d, want 0", root.Len())
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"resume.yaml", FormatYAML},
		{"resume.yml", FormatYAML},
		{"resume.JSON", FormatJSON},
		{"resume.toml", FormatTOML},
		{"resume.txt", FormatYAML},
		{"resume", FormatYAML},
	}
	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{"json", FormatJSON, false},
		{"toml", FormatTOML, false},
		{"", FormatYAML, false},
		{"docx", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) succeeded, want error", tt.in)
			} else if !errors.Is(err, errors.ErrCodeUnsupported) {
				t.Errorf("ParseFormat(%q) code = %v, want UNSUPPORTED", tt.in, errors.GetCode(err))
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
