// Package render writes annotated sentences for terminals and machines.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mideind/greynircorrect/annotation"
	"github.com/mideind/greynircorrect/parser"
	"github.com/mideind/greynircorrect/tokenizer"
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Teal      = "\033[1;36m"
	Gray      = "\033[0;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

// codeColor selects the highlight color for an annotation code. Grammar
// errors are red, token-level corrections yellow, pattern advice teal.
func codeColor(code string) string {
	switch {
	case strings.HasPrefix(code, "E"):
		return Red
	case strings.HasPrefix(code, "P"):
		return Teal
	}
	return Yellow256
}

// Renderer writes sentences as text, highlighting annotated token spans
// when color is enabled.
type Renderer struct {
	W        io.Writer
	HasColor bool

	// ShowDetail also prints the detail line of each annotation.
	ShowDetail bool
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, HasColor: true, ShowDetail: true}
}

// Sentence writes the sentence text followed by one line per annotation.
func (r *Renderer) Sentence(s *parser.Sentence) {
	fmt.Fprintf(r.W, "%s\n", r.SentenceString(s))
	for _, a := range s.Annotations {
		r.annotation(a)
	}
}

// SentenceString returns the sentence text with annotated spans
// highlighted. Overlapping spans are colored by the first annotation
// that covers them.
func (r *Renderer) SentenceString(s *parser.Sentence) string {
	texts := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		texts[i] = t.Text
		if !r.HasColor {
			continue
		}
		for _, a := range s.Annotations {
			if a.Start <= i && i <= a.End {
				texts[i] = codeColor(a.Code) + t.Text + Off
				break
			}
		}
	}
	return tokenizer.CorrectSpaces(texts)
}

func (r *Renderer) annotation(a annotation.Annotation) {
	code := a.Code
	if r.HasColor {
		code = codeColor(a.Code) + a.Code + Off
	}
	fmt.Fprintf(r.W, "  %s [%d-%d] %s\n", code, a.Start, a.End, a.Text)
	if r.ShowDetail && a.Detail != "" {
		prefix := "       "
		if r.HasColor {
			prefix = "       " + Grey256
			fmt.Fprintf(r.W, "%s%s%s\n", prefix, a.Detail, Off)
			return
		}
		fmt.Fprintf(r.W, "%s%s\n", prefix, a.Detail)
	}
}
