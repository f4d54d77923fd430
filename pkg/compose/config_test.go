package compose

import (
	"testing"

	"github.com/resumeforge/resumeforge/pkg/errors"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// configTree loads a document with the given config block and returns the
// raw config sub-tree.
func configTree(t *testing.T, configYAML string) *resume.Mapping {
	t.Helper()
	doc, err := resume.Load([]byte("personal:\n  name: T\n"+configYAML), resume.FormatYAML)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return doc.Config
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FontName != "Helvetica" || cfg.FontNameBold != "Helvetica-Bold" || cfg.FontNameItalic != "Helvetica-Oblique" {
		t.Errorf("fonts = %q/%q/%q", cfg.FontName, cfg.FontNameBold, cfg.FontNameItalic)
	}
	if cfg.NameSize != 20 || cfg.SectionHeaderSize != 12 || cfg.TitleSize != 10 || cfg.BodySize != 9 {
		t.Errorf("sizes = %v/%v/%v/%v", cfg.NameSize, cfg.SectionHeaderSize, cfg.TitleSize, cfg.BodySize)
	}
	if cfg.Margin != 0.6 || cfg.SectionSpacing != 0.08 || cfg.ItemSpacing != 0.06 {
		t.Errorf("lengths = %v/%v/%v", cfg.Margin, cfg.SectionSpacing, cfg.ItemSpacing)
	}
	if len(cfg.SectionOrder) != 10 || cfg.SectionOrder[0] != "summary" || cfg.SectionOrder[9] != "volunteer" {
		t.Errorf("SectionOrder = %v", cfg.SectionOrder)
	}
	if cfg.Footer {
		t.Error("Footer default = true, want false")
	}
}

func TestResolveAbsent(t *testing.T) {
	cfg, err := Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve(nil): %v", err)
	}
	if cfg.Margin != 0.6 {
		t.Errorf("Margin = %v, want default", cfg.Margin)
	}
}

func TestResolveOverrides(t *testing.T) {
	raw := configTree(t, `
config:
  fonts:
    name: Times
    name_bold: Times-Bold
    name_size: 24
    body_size: 10
  margin: 0.8
  item_spacing: 0.1
  section_order: [education, experience]
  footer: true
`)
	cfg, err := Resolve(raw)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.FontName != "Times" || cfg.FontNameBold != "Times-Bold" {
		t.Errorf("fonts = %q/%q", cfg.FontName, cfg.FontNameBold)
	}
	// Unset options keep their defaults.
	if cfg.FontNameItalic != "Helvetica-Oblique" {
		t.Errorf("FontNameItalic = %q, want default", cfg.FontNameItalic)
	}
	if cfg.NameSize != 24 || cfg.BodySize != 10 {
		t.Errorf("sizes = %v/%v", cfg.NameSize, cfg.BodySize)
	}
	if cfg.TitleSize != 10 {
		t.Errorf("TitleSize = %v, want default", cfg.TitleSize)
	}
	if cfg.Margin != 0.8 || cfg.ItemSpacing != 0.1 {
		t.Errorf("lengths = %v/%v", cfg.Margin, cfg.ItemSpacing)
	}
	if cfg.SectionSpacing != 0.08 {
		t.Errorf("SectionSpacing = %v, want default", cfg.SectionSpacing)
	}
	if len(cfg.SectionOrder) != 2 || cfg.SectionOrder[0] != "education" {
		t.Errorf("SectionOrder = %v", cfg.SectionOrder)
	}
	if !cfg.Footer {
		t.Error("Footer = false, want true")
	}
}

func TestResolveIntegerLengths(t *testing.T) {
	raw := configTree(t, "config:\n  margin: 1\n")
	cfg, err := Resolve(raw)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Margin != 1.0 {
		t.Errorf("Margin = %v, want 1", cfg.Margin)
	}
}

func TestResolveWrongTypes(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"margin string", "config:\n  margin: wide\n"},
		{"footer string", "config:\n  footer: yes please\n"},
		{"fonts list", "config:\n  fonts: [Helvetica]\n"},
		{"font size string", "config:\n  fonts:\n    name_size: big\n"},
		{"font name number", "config:\n  fonts:\n    name: 12\n"},
		{"section_order scalar", "config:\n  section_order: skills\n"},
		{"section_order nested", "config:\n  section_order:\n    - [skills]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(configTree(t, tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeValidation) {
				t.Errorf("code = %v, want VALIDATION_ERROR", errors.GetCode(err))
			}
		})
	}
}
