package pattern

import (
	"strings"

	"github.com/mideind/greynircorrect/annotation"
	"github.com/mideind/greynircorrect/parser"
	"github.com/mideind/greynircorrect/token"
)

// Item is one element of a pattern expression, constraining a single
// token.
//
//   - Lemma matches against the token's meaning lemmas. "a|b" matches
//     either lemma; a leading "!" inverts the match.
//   - Cat requires a meaning of the given category.
//   - Tag requires inflection markers: "A|B" means any of, "A+B" means
//     all of, a single value means that marker.
//   - Near restricts the item to at most Near tokens after the previous
//     item's match; zero means anywhere later in the sentence.
type Item struct {
	Near  int    `json:"near,omitempty"`
	Lemma string `json:"lemma,omitempty"`
	Cat   string `json:"cat,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// Expr is an ordered sequence of items that must all match, in order.
type Expr []Item

// Rule couples a pattern expression with the annotation it produces.
type Rule struct {
	Code string
	Text string
	Expr Expr
}

// Matcher runs pattern rules over parsed sentences and appends an
// annotation per match. It implements the same invocation contract as the
// grammar error finder.
type Matcher struct {
	rules []Rule
}

func NewMatcher(rules []Rule) *Matcher {
	return &Matcher{rules: rules}
}

// Run appends one annotation per rule match to anns and returns the
// extended list. The annotation spans the first through last matched
// token.
func (m *Matcher) Run(anns []annotation.Annotation, s *parser.Sentence) []annotation.Annotation {
	for _, rule := range m.rules {
		for _, span := range matchExpr(s.Tokens, rule.Expr) {
			anns = append(anns, annotation.Annotation{
				Start: span[0],
				End:   span[1],
				Code:  rule.Code,
				Text:  rule.Text,
			})
		}
	}
	return anns
}

// matchExpr returns the [first,last] token spans of every match of the
// expression, anchored at each possible first-item token.
func matchExpr(tokens []token.Token, expr Expr) [][2]int {
	if len(expr) == 0 {
		return nil
	}
	var spans [][2]int
	for start := range tokens {
		if !itemMatches(tokens[start], expr[0]) {
			continue
		}
		if last, ok := matchRest(tokens, expr[1:], start); ok {
			spans = append(spans, [2]int{start, last})
		}
	}
	return spans
}

// matchRest greedily extends a partial match; each item takes the first
// qualifying token in its window.
func matchRest(tokens []token.Token, rest Expr, prev int) (int, bool) {
	last := prev
	for _, item := range rest {
		end := len(tokens) - 1
		if item.Near > 0 {
			end = min(end, last+item.Near)
		}
		found := false
		for i := last + 1; i <= end; i++ {
			if itemMatches(tokens[i], item) {
				last = i
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return last, true
}

func itemMatches(t token.Token, item Item) bool {
	if t.Kind != token.Word && t.Kind != token.Person {
		return false
	}

	if item.Lemma != "" {
		if negated := strings.TrimPrefix(item.Lemma, "!"); negated != item.Lemma {
			if hasLemma(t, negated) {
				return false
			}
		} else if !anyLemma(t, strings.Split(item.Lemma, "|")) {
			return false
		}
	}

	if item.Cat != "" {
		found := false
		for _, m := range t.Meanings {
			if m.Category == item.Cat {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if item.Tag != "" {
		if !tagMatches(t, item.Tag) {
			return false
		}
	}

	return true
}

func hasLemma(t token.Token, lemma string) bool {
	for _, m := range t.Meanings {
		if m.Lemma == lemma {
			return true
		}
	}
	return false
}

func anyLemma(t token.Token, lemmas []string) bool {
	for _, l := range lemmas {
		if hasLemma(t, l) {
			return true
		}
	}
	return false
}

// tagMatches applies the marker operators: "|" means any marker may be
// present, "+" means every marker must be present on a single meaning.
func tagMatches(t token.Token, tag string) bool {
	switch {
	case strings.Contains(tag, "|"):
		for _, or := range strings.Split(tag, "|") {
			if t.HasMarker(or) {
				return true
			}
		}
		return false
	case strings.Contains(tag, "+"):
		for _, m := range t.Meanings {
			all := true
			for _, and := range strings.Split(tag, "+") {
				if !m.HasMarker(and) {
					all = false
					break
				}
			}
			if all {
				return true
			}
		}
		return false
	default:
		return t.HasMarker(tag)
	}
}
