package tokenizer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mideind/greynircorrect/lexicon"
	"github.com/mideind/greynircorrect/token"
)

// Tokenizer splits raw text into paragraphs, sentences and classified
// tokens, and runs the spelling-correction pass that attaches correction
// metadata to tokens.
type Tokenizer struct {
	lex lexicon.Lexicon
}

func New(lex lexicon.Lexicon) *Tokenizer {
	return &Tokenizer{lex: lex}
}

// Paragraphs splits text into paragraphs. When split is false the whole
// text is returned as a single paragraph; otherwise paragraphs are
// separated by blank lines.
func (t *Tokenizer) Paragraphs(text string, split bool) []string {
	if !split {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitSentences tokenizes one paragraph and splits the token stream into
// sentences at terminator punctuation. Each sentence is classified and
// corrected before being returned.
func (t *Tokenizer) SplitSentences(paragraph string) [][]token.Token {
	raw := scan(paragraph)

	var sentences [][]token.Token
	var cur []token.Token
	for _, tok := range raw {
		cur = append(cur, tok)
		if tok.Kind == token.Punctuation && isTerminator(tok.Text) {
			sentences = append(sentences, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		sentences = append(sentences, cur)
	}

	for i, s := range sentences {
		t.classify(s)
		t.correct(s)
		sentences[i] = s
	}
	return sentences
}

func isTerminator(text string) bool {
	return text == "." || text == "!" || text == "?"
}

// scan performs the raw lexical split: words, numbers (with an attached
// ordinal period), and single-rune punctuation. Anything else becomes an
// Other token so that indices stay aligned with the input.
func scan(text string) []token.Token {
	var out []token.Token
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			out = append(out, token.Token{Kind: token.Word, Text: string(runes[i:j])})
			i = j
		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			// an immediately attached period makes an ordinal
			if j < len(runes) && runes[j] == '.' {
				j++
			}
			out = append(out, token.Token{Kind: token.Number, Text: string(runes[i:j])})
			i = j
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			out = append(out, token.Token{Kind: token.Punctuation, Text: string(r)})
			i++
		default:
			out = append(out, token.Token{Kind: token.Other, Text: string(r)})
			i++
		}
	}
	return out
}

// classify assigns capitalization states, looks up lexicon meanings and
// promotes recognized person names.
func (t *Tokenizer) classify(sentence []token.Token) {
	firstWord := true
	afterOrdinal := false
	for i := range sentence {
		tok := &sentence[i]
		if tok.Kind == token.Number {
			if firstWord && strings.HasSuffix(tok.Text, ".") {
				afterOrdinal = true
			}
			continue
		}
		if tok.Kind != token.Word {
			continue
		}

		switch {
		case afterOrdinal:
			tok.Cap = token.CapAfterOrdinal
			afterOrdinal = false
			firstWord = false
		case firstWord:
			tok.Cap = token.CapSentenceStart
			firstWord = false
		default:
			tok.Cap = token.CapInSentence
		}

		if t.lex.IsPerson(tok.Text) {
			tok.Kind = token.Person
			tok.Meanings = []token.Meaning{{
				Lemma:    tok.Text,
				Category: "person",
				Form:     "NF",
			}}
			continue
		}
		tok.Meanings = t.lex.Lookup(tok.Text)
	}
}

// correct is the spelling-correction pass. It attaches correction
// metadata for duplicated words, unnecessary mid-sentence capitalization,
// and unknown words close to a known word; unknown words without a close
// match are flagged but keep their empty meaning set.
func (t *Tokenizer) correct(sentence []token.Token) {
	var prevWord *token.Token
	for i := range sentence {
		tok := &sentence[i]
		if tok.Kind != token.Word && tok.Kind != token.Person {
			continue
		}

		if prevWord != nil && strings.EqualFold(prevWord.Text, tok.Text) {
			tok.Correction = &token.Correction{
				Code:        "S004",
				Span:        1,
				Description: fmt.Sprintf("Orðið '%s' er endurtekið", tok.Text),
			}
			prevWord = tok
			continue
		}
		prevWord = tok

		// person names are recognized by construction; the spelling
		// branches below apply to plain words only
		if tok.Kind == token.Person {
			continue
		}

		if len(tok.Meanings) > 0 {
			// recognized via a lowercase fallback mid-sentence means
			// the capitalization itself is suspect
			if tok.Cap == token.CapInSentence && isCapitalized(tok.Text) &&
				len(t.lex.Lookup(strings.ToLower(tok.Text))) > 0 {
				tok.Correction = &token.Correction{
					Code:        "S003",
					Span:        1,
					Description: fmt.Sprintf("Orðið '%s' á að rita með litlum staf", tok.Text),
				}
			}
			continue
		}

		if repl, ok := t.lex.Suggest(tok.Text); ok {
			tok.Meanings = t.lex.Lookup(repl)
			tok.Correction = &token.Correction{
				Code:        "S002",
				Span:        1,
				Description: fmt.Sprintf("Orðið '%s' var leiðrétt í '%s'", tok.Text, repl),
			}
			continue
		}

		tok.Correction = &token.Correction{
			Code:        "S001",
			Span:        1,
			Description: fmt.Sprintf("Orðið '%s' finnst ekki í orðabók", tok.Text),
		}
	}
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

// CorrectSpaces joins token texts with the conventional spacing:
// no space before closing punctuation and none after an opening bracket.
func CorrectSpaces(texts []string) string {
	var b strings.Builder
	for i, txt := range texts {
		if txt == "" {
			continue
		}
		if i > 0 && b.Len() > 0 && !noSpaceBefore(txt) && !strings.HasSuffix(b.String(), "(") {
			b.WriteByte(' ')
		}
		b.WriteString(txt)
	}
	return b.String()
}

func noSpaceBefore(txt string) bool {
	switch txt {
	case ".", ",", ":", ";", "!", "?", ")", "]", "}":
		return true
	}
	return false
}
