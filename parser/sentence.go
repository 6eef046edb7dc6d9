package parser

import (
	"time"

	"github.com/mideind/greynircorrect/annotation"
	"github.com/mideind/greynircorrect/token"
)

// Node is one node of a parse tree. Leaves carry the terminal symbol, the
// matched meaning and a one-token span; interior nodes carry a
// nonterminal symbol and the concatenated span of their children.
// Start and End delimit the token range as a half-open interval.
type Node struct {
	Symbol   string
	Start    int
	End      int
	Children []*Node

	// Terminal is true for leaves; Meaning is the lexicon meaning the
	// terminal matched.
	Terminal bool
	Meaning  token.Meaning
}

// Walk calls fn for the node and all its descendants, depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Size returns the number of nodes in the subtree.
func (n *Node) Size() int {
	size := 1
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}

// Sentence is one parsed sentence. It is created by the parser, reduced
// once, annotated once, and immutable thereafter.
type Sentence struct {
	// Tokens is the original token sequence, including tokens the
	// grammar does not understand.
	Tokens []token.Token

	// Forest holds all complete parses found, before disambiguation.
	Forest []*Node

	// Tree is the single deep parse tree chosen by the reducer, nil
	// when the sentence could not be parsed.
	Tree *Node

	// ErrIndex is the token index where parsing gave up; only
	// meaningful when Tree is nil.
	ErrIndex int

	// Ambiguity is the number of distinct parses prior to
	// disambiguation.
	Ambiguity int

	// ParseTime is the wall time spent parsing this sentence.
	ParseTime time.Duration

	// Annotations is attached exactly once by the annotator.
	Annotations []annotation.Annotation
}

// Parsed reports whether a deep parse tree exists.
func (s *Sentence) Parsed() bool {
	return s.Tree != nil
}

// Texts returns the surface texts of all tokens, in order.
func (s *Sentence) Texts() []string {
	texts := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		texts[i] = t.Text
	}
	return texts
}
