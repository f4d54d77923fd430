package compose

import (
	"reflect"
	"strings"
	"testing"

	"github.com/resumeforge/resumeforge/pkg/errors"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// assembleYAML loads a YAML document, resolves its config block, and runs
// the assembler.
func assembleYAML(t *testing.T, src string) ([]Block, []error) {
	t.Helper()
	doc, err := resume.Load([]byte(src), resume.FormatYAML)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg, err := Resolve(doc.Config)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return Assemble(doc, cfg)
}

// paragraphTexts collects the text of every paragraph with the given style.
func paragraphTexts(blocks []Block, style StyleID) []string {
	var texts []string
	for _, blk := range blocks {
		if p, ok := blk.(Paragraph); ok && p.Style == style {
			texts = append(texts, p.Text())
		}
	}
	return texts
}

func sectionHeaders(blocks []Block) []string {
	return paragraphTexts(blocks, StyleSectionHeader)
}

func TestAssembleHeaderOnly(t *testing.T) {
	blocks, issues := assembleYAML(t, "personal:\n  name: Ada Lovelace\n")
	if len(issues) != 0 {
		t.Fatalf("issues = %v, want none", issues)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %#v", len(blocks), blocks)
	}
	name, ok := blocks[0].(Paragraph)
	if !ok || name.Style != StyleName || name.Text() != "Ada Lovelace" {
		t.Errorf("blocks[0] = %#v, want name paragraph", blocks[0])
	}
	if _, ok := blocks[1].(Spacer); !ok {
		t.Errorf("blocks[1] = %#v, want spacer", blocks[1])
	}
}

func TestAssembleContactAndLinks(t *testing.T) {
	blocks, _ := assembleYAML(t, `
personal:
  name: Ada Lovelace
  email: ada@example.com
  phone: "555-0100"
  location: London, UK
  links:
    github: https://github.com/ada
    personal website: https://ada.dev
`)
	contact := paragraphTexts(blocks, StyleContact)
	want := []string{
		"ada@example.com • 555-0100 • London, UK",
		"Github: https://github.com/ada • Personal Website: https://ada.dev",
	}
	if !reflect.DeepEqual(contact, want) {
		t.Errorf("contact lines = %q, want %q", contact, want)
	}
}

func TestAssembleSectionOrder(t *testing.T) {
	blocks, issues := assembleYAML(t, `
personal:
  name: Ada
summary: Builds engines.
skills: [Go, SQL]
config:
  section_order: [skills, summary]
`)
	if len(issues) != 0 {
		t.Fatalf("issues = %v, want none", issues)
	}
	got := sectionHeaders(blocks)
	want := []string{"SKILLS", "PROFESSIONAL SUMMARY"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestAssembleSkipsEmptySections(t *testing.T) {
	blocks, issues := assembleYAML(t, `
personal:
  name: Ada
skills: [Go]
`)
	if len(issues) != 0 {
		t.Fatalf("issues = %v, want none", issues)
	}
	got := sectionHeaders(blocks)
	if !reflect.DeepEqual(got, []string{"SKILLS"}) {
		t.Errorf("headers = %q, want only SKILLS", got)
	}
}

func TestAssembleUnknownSectionWarning(t *testing.T) {
	blocks, issues := assembleYAML(t, `
personal:
  name: Ada
summary: Builds engines.
config:
  section_order: [hobbies, summary]
`)
	if len(issues) != 1 {
		t.Fatalf("issues = %v, want one", issues)
	}
	if !errors.Is(issues[0], errors.ErrCodeUnknownSection) {
		t.Errorf("code = %v, want UNKNOWN_SECTION", errors.GetCode(issues[0]))
	}
	if errors.Fatal(issues[0]) {
		t.Error("unknown section warning reported as fatal")
	}
	if !strings.Contains(issues[0].Error(), "hobbies") {
		t.Errorf("warning %q does not name the section", issues[0])
	}
	// The known section still renders.
	if got := sectionHeaders(blocks); !reflect.DeepEqual(got, []string{"PROFESSIONAL SUMMARY"}) {
		t.Errorf("headers = %q, want PROFESSIONAL SUMMARY", got)
	}
}

func TestAssembleDataNeverRendered(t *testing.T) {
	_, issues := assembleYAML(t, `
personal:
  name: Ada
summary: Builds engines.
experience:
  - title: Engineer
config:
  section_order: [summary]
`)
	if len(issues) != 1 {
		t.Fatalf("issues = %v, want one", issues)
	}
	if !strings.Contains(issues[0].Error(), "experience") {
		t.Errorf("warning %q does not name the dropped section", issues[0])
	}
	if errors.Fatal(issues[0]) {
		t.Error("dropped data warning reported as fatal")
	}
}

func TestAssembleFooter(t *testing.T) {
	blocks, _ := assembleYAML(t, `
personal:
  name: Ada
config:
  footer: true
`)
	if len(blocks) < 2 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	gap, ok := blocks[len(blocks)-2].(Spacer)
	if !ok || gap.Height != Inch(footerGap) {
		t.Errorf("penultimate block = %#v, want %v-point spacer", blocks[len(blocks)-2], Inch(footerGap))
	}
	p, ok := blocks[len(blocks)-1].(Paragraph)
	if !ok || p.Style != StyleFooter || p.Text() != FooterText {
		t.Errorf("last block = %#v, want footer paragraph", blocks[len(blocks)-1])
	}
}

func TestAssembleFooterDefaultsOff(t *testing.T) {
	blocks, _ := assembleYAML(t, "personal:\n  name: Ada\n")
	if got := paragraphTexts(blocks, StyleFooter); len(got) != 0 {
		t.Errorf("footer paragraphs = %q, want none", got)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	src := `
personal:
  name: Ada
  links:
    github: https://github.com/ada
summary: Builds engines.
skills:
  Languages: [Go, Python]
  Data: [SQL]
experience:
  - title: Engineer
    company: Analytical Ltd
    start_date: "2020"
    present: true
`
	first, _ := assembleYAML(t, src)
	second, _ := assembleYAML(t, src)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different block sequences")
	}
}

func TestAssembleFullOrderDefault(t *testing.T) {
	blocks, issues := assembleYAML(t, `
personal:
  name: Ada
summary: Builds engines.
experience:
  - title: Engineer
    company: Analytical Ltd
education:
  - degree: BS
    institution: Cambridge
skills: [Go]
projects:
  - name: Engine
certifications:
  - name: Cert
awards:
  - name: Prize
publications:
  - title: Paper
languages:
  English: Native
volunteer:
  - role: Mentor
`)
	if len(issues) != 0 {
		t.Fatalf("issues = %v, want none", issues)
	}
	want := []string{
		"PROFESSIONAL SUMMARY",
		"PROFESSIONAL EXPERIENCE",
		"EDUCATION",
		"SKILLS",
		"PROJECTS",
		"CERTIFICATIONS",
		"AWARDS & HONORS",
		"PUBLICATIONS",
		"LANGUAGES",
		"VOLUNTEER EXPERIENCE",
	}
	if got := sectionHeaders(blocks); !reflect.DeepEqual(got, want) {
		t.Errorf("headers = %q, want %q", got, want)
	}
	// Every section header is followed by its divider rule.
	for i, blk := range blocks {
		if p, ok := blk.(Paragraph); ok && p.Style == StyleSectionHeader {
			if _, ok := blocks[i+1].(Rule); !ok {
				t.Errorf("block after %q header = %#v, want rule", p.Text(), blocks[i+1])
			}
		}
	}
}

func TestSection(t *testing.T) {
	doc, err := resume.Load([]byte(`
personal:
  name: Ada Lovelace
summary: Writes engines.
skills: [Mathematics]
`), resume.FormatYAML)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg, err := Resolve(doc.Config)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	blocks, ok := Section(doc, cfg, "summary")
	if !ok {
		t.Fatal("summary reported as unknown")
	}
	if got := paragraphTexts(blocks, StyleSummary); !reflect.DeepEqual(got, []string{"Writes engines."}) {
		t.Errorf("summary paragraphs = %q", got)
	}
	if got := sectionHeaders(blocks); !reflect.DeepEqual(got, []string{"PROFESSIONAL SUMMARY"}) {
		t.Errorf("headers = %q", got)
	}

	if blocks, ok := Section(doc, cfg, "projects"); !ok || len(blocks) != 0 {
		t.Errorf("empty known section = (%v, %v), want no blocks and ok", blocks, ok)
	}
	if _, ok := Section(doc, cfg, "hobbies"); ok {
		t.Error("unknown section reported as known")
	}
}
