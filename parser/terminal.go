package parser

import (
	"strings"

	"github.com/mideind/greynircorrect/token"
	"github.com/mideind/greynircorrect/verbs"
)

// matchTerminal decides whether a token can fill a terminal symbol, and
// if so with which meaning. Terminal names are a category followed by
// underscore-separated variants, e.g. "no_nf" or "so_op_þgf".
func (p *Parser) matchTerminal(term string, tok token.Token) (token.Meaning, bool) {
	switch term {
	case "grm":
		if tok.Kind == token.Punctuation {
			return token.Meaning{Lemma: tok.Text, Category: "grm"}, true
		}
		return token.Meaning{}, false
	case "tala":
		if tok.Kind == token.Number {
			return token.Meaning{Lemma: tok.Text, Category: "tala"}, true
		}
		return token.Meaning{}, false
	case "person":
		if tok.Kind == token.Person {
			return token.Meaning{Lemma: tok.Text, Category: "person", Form: "NF"}, true
		}
		return token.Meaning{}, false
	}

	if tok.Kind != token.Word {
		return token.Meaning{}, false
	}

	parts := strings.Split(term, "_")
	category := parts[0]
	variants := parts[1:]

	for _, m := range tok.Meanings {
		if m.Category != category {
			continue
		}
		if category == "so" {
			if p.matchVerb(m, variants) {
				return m, true
			}
			continue
		}
		if matchMarkers(m, variants) {
			return m, true
		}
	}
	return token.Meaning{}, false
}

// matchMarkers requires every terminal variant to be present as an
// inflection marker of the meaning.
func matchMarkers(m token.Meaning, variants []string) bool {
	for _, v := range variants {
		if !m.HasMarker(strings.ToUpper(v)) {
			return false
		}
	}
	return true
}

// matchVerb applies the verb-specific matching rules. An "op" variant
// marks an impersonal terminal; the variant following it names the
// required subject case.
func (p *Parser) matchVerb(m token.Meaning, variants []string) bool {
	impersonal := false
	subjCase := ""
	var plain []string
	for i := 0; i < len(variants); i++ {
		if variants[i] == "op" {
			impersonal = true
			if i+1 < len(variants) {
				subjCase = variants[i+1]
				i++
			}
			continue
		}
		plain = append(plain, variants[i])
	}

	if impersonal {
		// relaxed matching so that verbs wrongly used impersonally are
		// caught; imperative, infinitive and plural forms are excluded
		// as implausible
		if verbs.CannotBeImpersonal(m.Lemma, m.Form) {
			return false
		}
		if subjCase != "" && !p.verbs.SubjectMatches(m.Lemma, subjCase) {
			return false
		}
	} else if p.verbs.StrictlyImpersonal(m.Lemma, m.Form) {
		// an impersonal form with no registered subject-case error must
		// not fill a normal verb terminal
		return false
	}

	// impersonal meanings matching a normal terminal keep only the
	// restrictive variants; everything else matches exactly
	relaxed := impersonal || strings.Contains(m.Form, "OP")
	for _, v := range plain {
		if relaxed && !isRestrictive(v) {
			continue
		}
		if !m.HasMarker(strings.ToUpper(v)) {
			return false
		}
	}
	return true
}

func isRestrictive(variant string) bool {
	for _, rv := range verbs.RestrictiveVariants {
		if variant == rv {
			return true
		}
	}
	return false
}
