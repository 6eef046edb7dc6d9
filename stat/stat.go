package stat

import (
	"time"

	"github.com/mideind/greynircorrect/parser"
)

// Handler aggregates parse statistics over a stream of sentences.
type Handler struct {
	stats        Stats
	ambiguitySum float64
}

// Stats are the job-level counters reported alongside checked text.
type Stats struct {
	NumSentences int `json:"num_sentences"`

	// NumParsed counts the sentences for which a deep tree was found.
	NumParsed int `json:"num_parsed"`

	NumTokens int `json:"num_tokens"`

	// Ambiguity is the mean number of distinct parses per parsed
	// sentence, prior to disambiguation.
	Ambiguity float64 `json:"ambiguity"`

	// ParseTime is the total wall time spent parsing.
	ParseTime time.Duration `json:"parse_time"`
}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Get() Stats {
	return h.stats
}

// Aggregate folds one sentence into the counters.
func (h *Handler) Aggregate(s *parser.Sentence) {
	h.stats.NumSentences++
	h.stats.NumTokens += len(s.Tokens)
	h.stats.ParseTime += s.ParseTime
	if s.Parsed() {
		h.stats.NumParsed++
		h.ambiguitySum += float64(s.Ambiguity)
		h.stats.Ambiguity = h.ambiguitySum / float64(h.stats.NumParsed)
	}
}
