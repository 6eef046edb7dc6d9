package grammar

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Variant names the condition flags enabled when a grammar source is
// compiled. Sections demarcated with $if(name)...$endif(name) are only
// included when the variant enables the named condition.
type Variant []string

// Baseline returns the variant with no conditions enabled.
func Baseline() Variant { return nil }

// ErrorDetecting returns the variant that activates the error-detection
// rules of the grammar.
func ErrorDetecting() Variant { return Variant{"include_errors"} }

// Enabled reports whether the named condition is active.
func (v Variant) Enabled(name string) bool {
	for _, c := range v {
		if c == name {
			return true
		}
	}
	return false
}

// Rule is a single production. Body symbols starting with an uppercase
// letter are nonterminals, the rest are terminals.
type Rule struct {
	Head string
	Body []string
}

// Grammar is a compiled grammar. Compiled grammars are immutable and safe
// to share between concurrent parsers.
type Grammar struct {
	// Root is the start nonterminal, the head of the first rule.
	Root string

	// Rules holds all productions in source order.
	Rules []Rule

	// ErrorTagged marks the nonterminals whose match signals a known
	// grammar mistake ($error-tagged rules).
	ErrorTagged map[string]bool

	// Variant the grammar was compiled with.
	Variant Variant

	// Path is the source file, empty for in-memory sources.
	Path string

	// Hash is the SHA-256 of the raw source text, used as the staleness
	// signal.
	Hash string

	byHead map[string][]Rule
}

// IsNonterminal reports whether the symbol names a nonterminal.
func IsNonterminal(sym string) bool {
	r, _ := utf8.DecodeRuneInString(sym)
	return unicode.IsUpper(r)
}

// RulesFor returns the productions for the given nonterminal, in source
// order.
func (g *Grammar) RulesFor(head string) []Rule {
	return g.byHead[head]
}

// Modified reports whether the grammar source file has changed since the
// grammar was compiled. In-memory grammars are never modified.
func (g *Grammar) Modified() bool {
	if g.Path == "" {
		return false
	}
	data, err := os.ReadFile(g.Path)
	if err != nil {
		// an unreadable source counts as modified; the rebuild will
		// surface the real error
		return true
	}
	return hashSource(data) != g.Hash
}

// Load reads and compiles a grammar file.
func Load(path string, v Variant) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}
	g, err := Compile(string(data), v)
	if err != nil {
		return nil, fmt.Errorf("grammar %s: %w", path, err)
	}
	g.Path = path
	return g, nil
}

// Compile parses a grammar source text under the given variant.
//
// Source format, one production per line:
//
//	Head → body symbols | alternative symbols
//
// "->" is accepted in place of "→". Lines starting with "#" are comments.
// A "$error" marker at the end of a production tags its head nonterminal
// as erroneous. "$if(cond)" / "$endif(cond)" delimit conditional sections.
func Compile(src string, v Variant) (*Grammar, error) {
	g := &Grammar{
		ErrorTagged: make(map[string]bool),
		Variant:     v,
		Hash:        hashSource([]byte(src)),
		byHead:      make(map[string][]Rule),
	}

	// condition nesting; a section is skipped when any enclosing
	// condition is disabled
	var conds []string
	skipped := 0

	sc := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if name, ok := directive(line, "$if"); ok {
			conds = append(conds, name)
			if !v.Enabled(name) {
				skipped++
			}
			continue
		}
		if name, ok := directive(line, "$endif"); ok {
			if len(conds) == 0 || conds[len(conds)-1] != name {
				return nil, fmt.Errorf("line %d: unbalanced $endif(%s)", lineNo, name)
			}
			if !v.Enabled(name) {
				skipped--
			}
			conds = conds[:len(conds)-1]
			continue
		}
		if skipped > 0 {
			continue
		}

		if err := g.addProduction(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(conds) > 0 {
		return nil, fmt.Errorf("unclosed $if(%s)", conds[len(conds)-1])
	}
	if len(g.Rules) == 0 {
		return nil, fmt.Errorf("no productions")
	}
	return g, nil
}

func directive(line, name string) (string, bool) {
	if !strings.HasPrefix(line, name+"(") || !strings.HasSuffix(line, ")") {
		return "", false
	}
	return line[len(name)+1 : len(line)-1], true
}

func (g *Grammar) addProduction(line string) error {
	line = strings.ReplaceAll(line, "->", "→")
	head, rest, found := strings.Cut(line, "→")
	if !found {
		return fmt.Errorf("missing arrow in %q", line)
	}
	head = strings.TrimSpace(head)
	if head == "" || !IsNonterminal(head) {
		return fmt.Errorf("invalid head %q", head)
	}

	for _, alt := range strings.Split(rest, "|") {
		syms := strings.Fields(alt)
		if len(syms) > 0 && syms[len(syms)-1] == "$error" {
			syms = syms[:len(syms)-1]
			g.ErrorTagged[head] = true
		}
		if len(syms) == 0 {
			return fmt.Errorf("empty production for %q", head)
		}
		rule := Rule{Head: head, Body: syms}
		g.Rules = append(g.Rules, rule)
		g.byHead[head] = append(g.byHead[head], rule)
	}
	if g.Root == "" {
		g.Root = head
	}
	return nil
}

func hashSource(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
