package parser

import (
	"slices"
	"time"

	"github.com/mideind/greynircorrect/grammar"
	"github.com/mideind/greynircorrect/token"
	"github.com/mideind/greynircorrect/verbs"
)

// maxParses bounds the number of parses collected per nonterminal and
// position, keeping pathological ambiguity in check.
const maxParses = 64

// Parser matches token sequences against a compiled grammar. A parser is
// immutable and safe for concurrent use; each Parse call keeps its own
// state.
//
// The grammar must be free of left recursion.
type Parser struct {
	grammar *grammar.Grammar
	verbs   *verbs.Table
}

func New(g *grammar.Grammar, vt *verbs.Table) *Parser {
	return &Parser{grammar: g, verbs: vt}
}

// Grammar returns the compiled grammar the parser was built with.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.grammar
}

// Parse parses the token sequence into a Sentence. When no complete parse
// exists, the sentence's ErrIndex marks the furthest token the parser
// could not get past.
func (p *Parser) Parse(tokens []token.Token) *Sentence {
	start := time.Now()
	run := &parseRun{
		p:      p,
		tokens: tokens,
		memo:   make(map[memoKey][]*Node),
		active: make(map[memoKey]bool),
	}

	var full []*Node
	for _, n := range run.nonterminal(p.grammar.Root, 0) {
		if n.End == len(tokens) {
			full = append(full, n)
		}
	}

	s := &Sentence{
		Tokens:    tokens,
		Forest:    full,
		Ambiguity: len(full),
		ParseTime: time.Since(start),
	}
	if len(full) == 0 {
		s.ErrIndex = run.furthest
	}
	return s
}

type memoKey struct {
	sym string
	pos int
}

type parseRun struct {
	p      *Parser
	tokens []token.Token
	memo   map[memoKey][]*Node
	active map[memoKey]bool

	// furthest failing token index, reported as ErrIndex
	furthest int
}

func (r *parseRun) nonterminal(sym string, pos int) []*Node {
	key := memoKey{sym, pos}
	if nodes, ok := r.memo[key]; ok {
		return nodes
	}
	if r.active[key] {
		// left-recursive cycle; the grammar contract forbids these,
		// treat as a dead end rather than recurse forever
		return nil
	}
	r.active[key] = true

	var out []*Node
	for _, rule := range r.p.grammar.RulesFor(sym) {
		for _, children := range r.sequence(rule.Body, pos) {
			end := pos
			if len(children) > 0 {
				end = children[len(children)-1].End
			}
			out = append(out, &Node{
				Symbol:   sym,
				Start:    pos,
				End:      end,
				Children: children,
			})
			if len(out) >= maxParses {
				break
			}
		}
		if len(out) >= maxParses {
			break
		}
	}

	r.active[key] = false
	r.memo[key] = out
	return out
}

// sequence matches a production body starting at pos, returning every
// distinct child combination.
func (r *parseRun) sequence(body []string, pos int) [][]*Node {
	partials := [][]*Node{nil}
	for _, sym := range body {
		var next [][]*Node
		for _, prefix := range partials {
			at := pos
			if len(prefix) > 0 {
				at = prefix[len(prefix)-1].End
			}

			var extensions []*Node
			if grammar.IsNonterminal(sym) {
				extensions = r.nonterminal(sym, at)
			} else if leaf := r.terminal(sym, at); leaf != nil {
				extensions = []*Node{leaf}
			}

			for _, ext := range extensions {
				next = append(next, append(slices.Clip(prefix), ext))
			}
		}
		partials = next
		if len(partials) == 0 {
			return nil
		}
	}
	return partials
}

func (r *parseRun) terminal(sym string, pos int) *Node {
	if pos >= len(r.tokens) {
		return nil
	}
	meaning, ok := r.p.matchTerminal(sym, r.tokens[pos])
	if !ok {
		if pos > r.furthest {
			r.furthest = pos
		}
		return nil
	}
	return &Node{
		Symbol:   sym,
		Start:    pos,
		End:      pos + 1,
		Terminal: true,
		Meaning:  meaning,
	}
}
