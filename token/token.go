package token

import "strings"

// Kind classifies a token produced by the tokenizer.
type Kind int

const (
	// Word is a regular word, possibly with lexicon meanings.
	Word Kind = iota

	// Person is a recognized person name. Person tokens always count as
	// recognized words, even when the name carries no lexicon meanings.
	Person

	// Number is a numeric token, including ordinals such as "3.".
	Number

	// Punctuation covers sentence-internal and sentence-final punctuation.
	Punctuation

	// Other covers everything the tokenizer does not understand, such as
	// exotic symbols. Other tokens are passed through to the parser
	// unchanged so that annotation indices stay aligned with the
	// submitted text.
	Other
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Person:
		return "person"
	case Number:
		return "number"
	case Punctuation:
		return "punctuation"
	}
	return "other"
}

// Cap is the capitalization state of a word token, carried from the
// tokenizer through to the annotators.
type Cap int

const (
	CapNone Cap = iota
	CapSentenceStart
	CapAfterOrdinal
	CapInSentence
)

// Meaning is a single lexicon entry for a word form.
type Meaning struct {
	// Lemma is the dictionary head word.
	Lemma string `json:"lemma"`

	// Category is the word category: "no" (noun), "so" (verb),
	// "lo" (adjective), "ao" (adverb), "fs" (preposition),
	// "pfn" (pronoun), "st" (conjunction), "person".
	Category string `json:"cat"`

	// Form is the inflection description, uppercase markers separated
	// by dashes, e.g. "GM-FH-NT-ET-3P" or "ÞGF-ET".
	Form string `json:"form"`
}

// Correction is spelling-correction metadata attached to a token by the
// correction pass of the tokenizer. A nil *Correction means the token
// carries no error.
type Correction struct {
	// Code is the token-level error code, e.g. "S002".
	Code string `json:"code"`

	// Span is the number of tokens covered by the error, at least 1.
	Span int `json:"span"`

	// Description is a human-readable message for the error.
	Description string `json:"description"`
}

// Token is one lexical unit of a sentence. Tokens are created by the
// tokenizer and must not be mutated once parsing has begun.
type Token struct {
	Kind Kind `json:"kind"`

	// Text is the surface text as it appeared in the input.
	Text string `json:"text"`

	// Meanings holds the lexicon matches for the token, empty for
	// unrecognized words and for non-word tokens.
	Meanings []Meaning `json:"meanings,omitempty"`

	Cap Cap `json:"-"`

	// Correction is set by the correction pass when the token text was
	// flagged or rewritten. Only Word and Person tokens may carry one.
	Correction *Correction `json:"correction,omitempty"`
}

// Recognized reports whether the token counts as a recognized word for
// the language-detection heuristic. Person names are always recognized.
func (t Token) Recognized() bool {
	if t.Kind == Person {
		return true
	}
	return t.Kind == Word && len(t.Meanings) > 0
}

// HasMarker reports whether any meaning of the token carries the given
// inflection marker.
func (t Token) HasMarker(marker string) bool {
	for _, m := range t.Meanings {
		if m.HasMarker(marker) {
			return true
		}
	}
	return false
}

// HasMarker reports whether the meaning's form contains the given
// dash-separated marker, compared exactly.
func (m Meaning) HasMarker(marker string) bool {
	for _, f := range strings.Split(m.Form, "-") {
		if f == marker {
			return true
		}
	}
	return false
}
