package checker

import (
	"fmt"

	"github.com/mideind/greynircorrect/annotation"
	"github.com/mideind/greynircorrect/parser"
	"github.com/mideind/greynircorrect/token"
	"github.com/mideind/greynircorrect/tokenizer"
)

// annotate produces the annotation list for a parsed sentence. Exactly
// one of three shapes results: a single not-Icelandic annotation, the
// token-level annotations plus a parse failure, or the token-level
// annotations plus grammar and pattern findings.
func (c *Checker) annotate(pair *Pair, s *parser.Sentence) []annotation.Annotation {
	var anns []annotation.Annotation

	// token-level pass: lift corrections attached by the tokenizer and
	// count recognized words for the language heuristic
	var words, recognized int
	for i, t := range s.Tokens {
		if t.Kind == token.Word || t.Kind == token.Person {
			words++
			if t.Recognized() {
				recognized++
			}
		}
		if t.Correction == nil {
			continue
		}
		if t.Kind != token.Word && t.Kind != token.Person {
			panic(fmt.Sprintf("correction %s on %s token %q", t.Correction.Code, t.Kind, t.Text))
		}
		anns = append(anns, annotation.Annotation{
			Start: i,
			End:   i + t.Correction.Span - 1,
			Code:  t.Correction.Code,
			Text:  t.Correction.Description,
		})
	}

	switch {
	case words > 2 && float64(recognized)/float64(words) < c.minRatio:
		// token-level findings are meaningless for foreign text
		anns = []annotation.Annotation{{
			Start: 0,
			End:   len(s.Tokens) - 1,
			Code:  "E004",
			Text:  "Málsgreinin er sennilega ekki á íslensku",
			Detail: fmt.Sprintf("%.0f%% orða í henni finnast ekki í íslenskri orðabók",
				100.0*float64(words-recognized)/float64(words)),
		}}

	case !s.Parsed():
		anns = append(anns, annotation.Annotation{
			Start:  0,
			End:    len(s.Tokens) - 1,
			Code:   "E001",
			Text:   "Málsgreinin fellur ekki að reglum",
			Detail: fmt.Sprintf("Þáttun brást í kring um %d. tóka ('%s')", s.ErrIndex+1, c.errContext(s)),
		})

	default:
		anns = pair.Finder.Run(anns, s)
		anns = pair.Patterns.Run(anns, s)
	}

	annotation.Sort(anns)
	return anns
}

// errContext quotes the tokens surrounding the parse failure point.
func (c *Checker) errContext(s *parser.Sentence) string {
	lo := max(0, s.ErrIndex-1)
	hi := min(len(s.Tokens), s.ErrIndex+2)
	return tokenizer.CorrectSpaces(s.Texts()[lo:hi])
}
