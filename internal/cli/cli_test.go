package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/resumeforge/resumeforge/pkg/errors"
)

const cliDoc = `personal:
  name: Grace Hopper
  email: grace@example.com
summary: Compiler pioneer and programming language designer.
experience:
  - title: Senior Mathematician
    company: Eckert-Mauchly
    start_date: "1949-05"
    end_date: "1967-01"
    highlights:
      - Designed the first compiler for a programming language.
skills: [COBOL, FLOW-MATIC, UNIVAC]
`

// writeDoc drops the standard test document into a temp file.
func writeDoc(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandStructure(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"check", "preview", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"output-dir", "no-cache", "refresh", "footer"} {
		if root.Flags().Lookup(flag) == nil {
			t.Errorf("root command is missing flag %q", flag)
		}
	}
}

func TestRunGenerate(t *testing.T) {
	input := writeDoc(t, cliDoc)
	outDir := filepath.Join(t.TempDir(), "out")

	c := New(io.Discard, LogInfo)
	opts := generateOpts{outputDir: outDir, noCache: true}
	if err := c.runGenerate(context.Background(), input, opts); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}

	pdf, err := os.ReadFile(filepath.Join(outDir, "Grace_Hopper_resume.pdf"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("output file is not a PDF")
	}
}

func TestRunGenerateMissingFile(t *testing.T) {
	c := New(io.Discard, LogInfo)
	opts := generateOpts{outputDir: t.TempDir(), noCache: true}

	err := c.runGenerate(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"), opts)
	if err == nil {
		t.Fatal("expected error for a missing input file")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeNotFound {
		t.Errorf("GetCode(err) = %q, want %q", got, errors.ErrCodeNotFound)
	}
}

func TestRunCheck(t *testing.T) {
	input := writeDoc(t, cliDoc)

	c := New(io.Discard, LogInfo)
	if err := c.runCheck(context.Background(), input); err != nil {
		t.Errorf("runCheck() on a valid document: %v", err)
	}
}

func TestRunCheckInvalidDocument(t *testing.T) {
	input := writeDoc(t, "personal: just a string\n")

	c := New(io.Discard, LogInfo)
	err := c.runCheck(context.Background(), input)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeValidation {
		t.Errorf("GetCode(err) = %q, want %q", got, errors.ErrCodeValidation)
	}
}

func TestWritePDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := writePDF(dir, "test_resume.pdf", []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("writePDF() error: %v", err)
	}
	if want := filepath.Join(dir, "test_resume.pdf"); path != want {
		t.Errorf("writePDF() path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "%PDF-fake" {
		t.Errorf("written data = %q, want %q", data, "%PDF-fake")
	}

	// The temp file must not survive the rename
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir has %d entries, want 1", len(entries))
	}
}
