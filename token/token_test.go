package token

import "testing"

func TestRecognized(t *testing.T) {
	cases := []struct {
		tok  Token
		want bool
	}{
		{Token{Kind: Person, Text: "Jón"}, true},
		{Token{Kind: Word, Text: "hundur", Meanings: []Meaning{{Lemma: "hundur"}}}, true},
		{Token{Kind: Word, Text: "xyzzy"}, false},
		{Token{Kind: Number, Text: "3."}, false},
		{Token{Kind: Punctuation, Text: "."}, false},
	}
	for _, c := range cases {
		if got := c.tok.Recognized(); got != c.want {
			t.Errorf("Recognized(%s %q) = %t, want %t", c.tok.Kind, c.tok.Text, got, c.want)
		}
	}
}

func TestHasMarkerExact(t *testing.T) {
	m := Meaning{Form: "GM-FH-NT-ET-3P-OP"}

	for _, marker := range []string{"GM", "NT", "OP", "3P"} {
		if !m.HasMarker(marker) {
			t.Errorf("marker %s not found", marker)
		}
	}

	// markers compare exactly, not as substrings
	if m.HasMarker("F") {
		t.Error("partial marker matched")
	}
	if m.HasMarker("ET-3P") {
		t.Error("marker pair matched as one")
	}

	empty := Meaning{}
	if empty.HasMarker("GM") {
		t.Error("empty form matched")
	}
}

func TestTokenHasMarkerAnyMeaning(t *testing.T) {
	tok := Token{Kind: Word, Meanings: []Meaning{
		{Form: "KK-NF-ET"},
		{Form: "GM-NH"},
	}}
	if !tok.HasMarker("NH") || !tok.HasMarker("NF") {
		t.Error("marker lookup must cover all meanings")
	}
	if tok.HasMarker("OP") {
		t.Error("absent marker matched")
	}
}
