package annotation

import (
	"fmt"
	"sort"
)

// Annotation is a positioned diagnostic on a sentence. Start and End are
// token indices into the sentence, both inclusive. Annotations are value
// objects and may overlap.
type Annotation struct {
	Start int `json:"start"`
	End   int `json:"end"`

	// Code is a short identifier, e.g. "E001" or "S002".
	Code string `json:"code"`

	// Text is a short human-readable message.
	Text string `json:"text"`

	// Detail is an optional longer message.
	Detail string `json:"detail,omitempty"`
}

func (a Annotation) String() string {
	s := fmt.Sprintf("%03d-%03d: %s %s", a.Start, a.End, a.Code, a.Text)
	if a.Detail != "" {
		s += " (" + a.Detail + ")"
	}
	return s
}

// Sort orders annotations ascending by start index; annotations starting
// at the same token are ordered by decreasing end index, so that wider
// spans come first. The sort is stable.
func Sort(anns []Annotation) {
	sort.SliceStable(anns, func(i, j int) bool {
		if anns[i].Start != anns[j].Start {
			return anns[i].Start < anns[j].Start
		}
		return anns[i].End > anns[j].End
	})
}
