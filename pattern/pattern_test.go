package pattern

import (
	"testing"

	"github.com/mideind/greynircorrect/parser"
	"github.com/mideind/greynircorrect/token"
)

func word(text string, meanings ...token.Meaning) token.Token {
	return token.Token{Kind: token.Word, Text: text, Meanings: meanings}
}

func sentence(toks ...token.Token) *parser.Sentence {
	return &parser.Sentence{Tokens: toks}
}

var (
	mVera   = token.Meaning{Lemma: "vera", Category: "so", Form: "GM-FH-NT-ET-1P"}
	mAð     = token.Meaning{Lemma: "að", Category: "nhm"}
	mHlaupa = token.Meaning{Lemma: "hlaupa", Category: "so", Form: "GM-NH"}
	mHundur = token.Meaning{Lemma: "hundur", Category: "no", Form: "KK-NF-ET"}
)

func TestDefaultProgressiveRule(t *testing.T) {
	m := Default()

	// "er að hlaupa": the infinitive follows within two tokens
	s := sentence(
		word("Ég", token.Meaning{Lemma: "ég", Category: "pfn", Form: "NF-ET-1P"}),
		word("er", mVera),
		word("að", mAð),
		word("hlaupa", mHlaupa),
	)

	anns := m.Run(nil, s)
	if len(anns) != 1 {
		t.Fatalf("got %d annotations, want 1: %v", len(anns), anns)
	}
	if anns[0].Code != "P001" {
		t.Errorf("code: %q", anns[0].Code)
	}
	if anns[0].Start != 1 || anns[0].End != 3 {
		t.Errorf("span: [%d,%d]", anns[0].Start, anns[0].End)
	}
}

func TestNearWindowBound(t *testing.T) {
	m := NewMatcher([]Rule{{
		Code: "PX",
		Expr: Expr{{Lemma: "vera"}, {Near: 1, Tag: "NH"}},
	}})

	// the infinitive is two tokens after "er", outside the window
	s := sentence(word("er", mVera), word("að", mAð), word("hlaupa", mHlaupa))
	if anns := m.Run(nil, s); len(anns) != 0 {
		t.Fatalf("match outside the window: %v", anns)
	}
}

func TestLemmaAlternationAndNegation(t *testing.T) {
	alt := NewMatcher([]Rule{{Code: "PA", Expr: Expr{{Lemma: "vera|fara"}}}})
	if anns := alt.Run(nil, sentence(word("er", mVera))); len(anns) != 1 {
		t.Fatalf("alternation did not match: %v", anns)
	}

	neg := NewMatcher([]Rule{{Code: "PN", Expr: Expr{{Lemma: "!vera", Cat: "so"}}}})
	if anns := neg.Run(nil, sentence(word("er", mVera))); len(anns) != 0 {
		t.Fatalf("negation matched its own lemma: %v", anns)
	}
	if anns := neg.Run(nil, sentence(word("hlaupa", mHlaupa))); len(anns) != 1 {
		t.Fatalf("negation did not match other verb: %v", anns)
	}
}

func TestTagOperators(t *testing.T) {
	or := NewMatcher([]Rule{{Code: "PO", Expr: Expr{{Tag: "NH|SAGNB"}}}})
	if anns := or.Run(nil, sentence(word("hlaupa", mHlaupa))); len(anns) != 1 {
		t.Fatalf("or-tag did not match: %v", anns)
	}

	and := NewMatcher([]Rule{{Code: "PD", Expr: Expr{{Tag: "GM+NH"}}}})
	if anns := and.Run(nil, sentence(word("hlaupa", mHlaupa))); len(anns) != 1 {
		t.Fatalf("and-tag did not match: %v", anns)
	}

	andMiss := NewMatcher([]Rule{{Code: "PM", Expr: Expr{{Tag: "GM+SAGNB"}}}})
	if anns := andMiss.Run(nil, sentence(word("hlaupa", mHlaupa))); len(anns) != 0 {
		t.Fatalf("and-tag matched with a missing marker: %v", anns)
	}
}

func TestNonWordTokensNeverMatch(t *testing.T) {
	m := NewMatcher([]Rule{{Code: "PW", Expr: Expr{{Cat: "no"}}}})
	s := sentence(token.Token{Kind: token.Punctuation, Text: "."}, word("hundur", mHundur))
	anns := m.Run(nil, s)
	if len(anns) != 1 || anns[0].Start != 1 {
		t.Fatalf("got %v", anns)
	}
}
