package errfinder

import (
	"fmt"
	"strings"

	"github.com/mideind/greynircorrect/annotation"
	"github.com/mideind/greynircorrect/grammar"
	"github.com/mideind/greynircorrect/parser"
	"github.com/mideind/greynircorrect/tokenizer"
	"github.com/mideind/greynircorrect/verbs"
)

// caseNames maps subject-case abbreviations to the dative forms used in
// messages ("í þágufalli").
var caseNames = map[string]string{
	"nf":  "nefnifalli",
	"þf":  "þolfalli",
	"þgf": "þágufalli",
	"ef":  "eignarfalli",
}

// Finder collects grammar errors from a deep parse tree: nonterminals the
// grammar tags as erroneous (E002) and impersonal verbs used with a wrong
// subject case (E003). It is bound to the grammar that produced the tree.
type Finder struct {
	grammar *grammar.Grammar
	verbs   *verbs.Table
}

func New(g *grammar.Grammar, vt *verbs.Table) *Finder {
	return &Finder{grammar: g, verbs: vt}
}

// Run appends annotations for the sentence's deep tree to anns and
// returns the extended list. Sentences without a deep tree are left
// untouched.
func (f *Finder) Run(anns []annotation.Annotation, s *parser.Sentence) []annotation.Annotation {
	if s.Tree == nil {
		return anns
	}
	s.Tree.Walk(func(n *parser.Node) {
		if n.Terminal {
			if a, ok := f.subjectCaseError(n); ok {
				anns = append(anns, a)
			}
			return
		}
		if f.grammar.ErrorTagged[n.Symbol] {
			anns = append(anns, annotation.Annotation{
				Start:  n.Start,
				End:    n.End - 1,
				Code:   "E002",
				Text:   "Þetta virðist vera málfræðivilla",
				Detail: fmt.Sprintf("Setningarliðurinn '%s' fellur ekki að réttu máli", f.spanText(s, n)),
			})
		}
	})
	return anns
}

// subjectCaseError flags verb leaves whose parse used a subject case
// registered as erroneous. Two shapes occur: an impersonal terminal whose
// subject-case variant is in the erroneous set, and an impersonal verb
// form matched by a normal terminal, which implies a nominative subject.
func (f *Finder) subjectCaseError(n *parser.Node) (annotation.Annotation, bool) {
	if n.Meaning.Category != "so" {
		return annotation.Annotation{}, false
	}

	subjCase := ""
	impliedNominative := false
	if _, rest, found := strings.Cut(n.Symbol, "_op_"); found {
		subjCase = strings.SplitN(rest, "_", 2)[0]
	} else if strings.Contains(n.Meaning.Form, "OP") {
		subjCase = "nf"
		impliedNominative = true
	}
	if subjCase == "" {
		return annotation.Annotation{}, false
	}
	// a nominative subject with a strictly impersonal verb is always
	// wrong, even without a registered erroneous case
	wrong := f.verbs.IsErrorSubject(n.Meaning.Lemma, subjCase) ||
		(impliedNominative && f.verbs.IsStrictlyImpersonal(n.Meaning.Lemma))
	if !wrong {
		return annotation.Annotation{}, false
	}

	detail := fmt.Sprintf("Frumlag sagnarinnar '%s' stendur hér í %s", n.Meaning.Lemma, caseNames[subjCase])
	if accepted := f.verbs.AcceptedSubjects(n.Meaning.Lemma); len(accepted) > 0 {
		detail += fmt.Sprintf(" en á að vera í %s", caseNames[accepted[0]])
	}
	return annotation.Annotation{
		Start:  n.Start,
		End:    n.End - 1,
		Code:   "E003",
		Text:   fmt.Sprintf("Röng fallnotkun með sögninni '%s'", n.Meaning.Lemma),
		Detail: detail,
	}, true
}

func (f *Finder) spanText(s *parser.Sentence, n *parser.Node) string {
	var texts []string
	for _, t := range s.Tokens[n.Start:n.End] {
		texts = append(texts, t.Text)
	}
	return tokenizer.CorrectSpaces(texts)
}
