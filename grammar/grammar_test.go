package grammar

import (
	"os"
	"path/filepath"
	"testing"
)

const testSrc = `# comment
S → A b | c
A -> d e

$if(extra)
S → Wrong $error
$endif(extra)
`

func TestCompileBaseline(t *testing.T) {
	g, err := Compile(testSrc, Baseline())
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	if g.Root != "S" {
		t.Errorf("root: got %q, want S", g.Root)
	}
	if len(g.Rules) != 3 {
		t.Fatalf("rules: got %d, want 3", len(g.Rules))
	}
	if len(g.ErrorTagged) != 0 {
		t.Errorf("baseline must not include error rules: %v", g.ErrorTagged)
	}

	alts := g.RulesFor("S")
	if len(alts) != 2 {
		t.Fatalf("S alternatives: got %d, want 2", len(alts))
	}
	if alts[0].Body[0] != "A" || alts[0].Body[1] != "b" {
		t.Errorf("unexpected first alternative: %v", alts[0].Body)
	}
}

func TestCompileVariantIncludesConditionalSection(t *testing.T) {
	g, err := Compile(testSrc, Variant{"extra"})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	if len(g.Rules) != 4 {
		t.Fatalf("rules: got %d, want 4", len(g.Rules))
	}
	if !g.ErrorTagged["S"] {
		t.Errorf("$error marker not recorded for S")
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []string{
		"",                    // no productions
		"S →",                 // empty production
		"s → a",               // lowercase head
		"just words",          // missing arrow
		"$if(x)\nS → a",       // unclosed section
		"S → a\n$endif(x)",    // unbalanced endif
		"$if(x)\n$endif(y)\n", // mismatched condition name
	}
	for _, src := range cases {
		if _, err := Compile(src, Baseline()); err == nil {
			t.Errorf("compile %q: expected error", src)
		}
	}
}

func TestIsNonterminal(t *testing.T) {
	if !IsNonterminal("Setning") || !IsNonterminal("Málsgrein") {
		t.Error("uppercase heads must be nonterminals")
	}
	if IsNonterminal("so_op_þgf") || IsNonterminal("þgf") {
		t.Error("lowercase symbols must be terminals")
	}
}

func TestDefaultGrammarCompiles(t *testing.T) {
	base, err := Default(Baseline())
	if err != nil {
		t.Fatalf("baseline: %v", err)
	}
	checking, err := Default(ErrorDetecting())
	if err != nil {
		t.Fatalf("error-detecting: %v", err)
	}

	if len(checking.Rules) <= len(base.Rules) {
		t.Errorf("error-detecting variant must add rules: %d vs %d",
			len(checking.Rules), len(base.Rules))
	}
	if !checking.ErrorTagged["BhFrumlagsVilla"] {
		t.Errorf("BhFrumlagsVilla not error tagged")
	}
	if base.Modified() {
		t.Error("in-memory grammar reported as modified")
	}
}

func TestLoadAndModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.grammar")
	if err := os.WriteFile(path, []byte("S → a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path, Baseline())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.Path != path {
		t.Errorf("path not recorded: %q", g.Path)
	}
	if g.Modified() {
		t.Error("freshly loaded grammar reported as modified")
	}

	if err := os.WriteFile(path, []byte("S → a b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !g.Modified() {
		t.Error("content change not detected")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if !g.Modified() {
		t.Error("missing source must count as modified")
	}
}
