package parser

import "github.com/mideind/greynircorrect/grammar"

// Reducer disambiguates a parse forest into a single deep tree. A reducer
// is bound to the exact grammar its parser was compiled with; the two are
// always constructed and replaced together.
type Reducer struct {
	grammar *grammar.Grammar
}

func NewReducer(g *grammar.Grammar) *Reducer {
	return &Reducer{grammar: g}
}

// Grammar returns the grammar the reducer is bound to.
func (r *Reducer) Grammar() *grammar.Grammar {
	return r.grammar
}

// Reduce picks the deep tree for the sentence: the smallest complete
// parse, ties resolved in favor of the earliest derivation. Reducing an
// unparseable sentence is a no-op.
func (r *Reducer) Reduce(s *Sentence) {
	var best *Node
	bestSize := 0
	for _, n := range s.Forest {
		size := n.Size()
		if best == nil || size < bestSize {
			best, bestSize = n, size
		}
	}
	s.Tree = best
}
