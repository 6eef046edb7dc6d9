package render

import (
	"encoding/json"
	"io"

	"github.com/mideind/greynircorrect/annotation"
	"github.com/mideind/greynircorrect/parser"
	"github.com/mideind/greynircorrect/tokenizer"
)

// SentenceJSON is the wire shape of one checked sentence.
type SentenceJSON struct {
	Text        string                  `json:"text"`
	Tokens      []string                `json:"tokens"`
	Parsed      bool                    `json:"parsed"`
	Annotations []annotation.Annotation `json:"annotations"`
}

// JSONRenderer writes checked sentences as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the paragraphs as a JSON array of arrays of
// sentences.
func (r *JSONRenderer) Render(paragraphs [][]*parser.Sentence) error {
	out := make([][]SentenceJSON, 0, len(paragraphs))
	for _, para := range paragraphs {
		ps := make([]SentenceJSON, 0, len(para))
		for _, s := range para {
			ps = append(ps, toJSON(s))
		}
		out = append(out, ps)
	}
	return json.NewEncoder(r.W).Encode(out)
}

// Sentence serializes a single sentence as one JSON object.
func (r *JSONRenderer) Sentence(s *parser.Sentence) error {
	return json.NewEncoder(r.W).Encode(toJSON(s))
}

func toJSON(s *parser.Sentence) SentenceJSON {
	anns := s.Annotations
	if anns == nil {
		anns = []annotation.Annotation{}
	}
	return SentenceJSON{
		Text:        tokenizer.CorrectSpaces(s.Texts()),
		Tokens:      s.Texts(),
		Parsed:      s.Parsed(),
		Annotations: anns,
	}
}
