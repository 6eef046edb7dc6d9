package lexicon

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/xrash/smetrics"

	"github.com/mideind/greynircorrect/token"
)

// Lexicon resolves word forms to their meanings. Implementations must be
// safe for concurrent readers once populated.
type Lexicon interface {
	// Lookup returns the meanings registered for the word form. A word
	// capitalized at sentence start is also tried lowercased.
	Lookup(word string) []token.Meaning

	// Contains reports whether the word form has at least one meaning.
	Contains(word string) bool

	// IsPerson reports whether the word is a registered person name.
	IsPerson(name string) bool

	// Suggest returns a replacement within edit distance 1 of the word,
	// if one exists. The lexicographically smallest candidate is chosen
	// so that suggestions are deterministic.
	Suggest(word string) (string, bool)
}

// Memory is an in-memory Lexicon.
type Memory struct {
	entries map[string][]token.Meaning
	persons map[string]bool
}

var _ Lexicon = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string][]token.Meaning),
		persons: make(map[string]bool),
	}
}

// Add registers a meaning for a word form.
func (m *Memory) Add(word string, meaning token.Meaning) {
	m.entries[word] = append(m.entries[word], meaning)
}

// AddPerson registers a person name.
func (m *Memory) AddPerson(name string) {
	m.persons[name] = true
}

func (m *Memory) Lookup(word string) []token.Meaning {
	if ms, ok := m.entries[word]; ok {
		return ms
	}
	return m.entries[strings.ToLower(word)]
}

func (m *Memory) Contains(word string) bool {
	return len(m.Lookup(word)) > 0
}

func (m *Memory) IsPerson(name string) bool {
	return m.persons[name]
}

func (m *Memory) Suggest(word string) (string, bool) {
	lower := strings.ToLower(word)
	runes := utf8.RuneCountInString(lower)
	var best string
	for cand := range m.entries {
		if abs(utf8.RuneCountInString(cand)-runes) > 1 {
			continue
		}
		if smetrics.WagnerFischer(lower, cand, 1, 1, 1) != 1 {
			continue
		}
		if best == "" || cand < best {
			best = cand
		}
	}
	return best, best != ""
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

//go:embed data/ord.tsv
var baseData embed.FS

// Base returns the built-in vocabulary, loaded from the embedded word
// list. The list is small; production deployments import a full
// vocabulary into the sqlite store instead.
func Base() *Memory {
	m := NewMemory()
	f, err := baseData.Open("data/ord.tsv")
	if err != nil {
		// the embedded file is part of the build
		panic(fmt.Sprintf("embedded vocabulary missing: %v", err))
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, meaning, ok := ParseEntry(line)
		if !ok {
			continue
		}
		if meaning.Category == "person" {
			m.AddPerson(word)
			continue
		}
		m.Add(word, meaning)
	}
	return m
}

// Entry is one vocabulary record, as parsed from a word-list file.
type Entry struct {
	Word    string
	Meaning token.Meaning
}

// ParseEntries parses a whole word-list in the ord.tsv format, skipping
// blank lines and comments.
func ParseEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, meaning, ok := ParseEntry(line)
		if !ok {
			return nil, fmt.Errorf("malformed vocabulary line: %q", line)
		}
		entries = append(entries, Entry{Word: word, Meaning: meaning})
	}
	return entries, sc.Err()
}

// ParseEntry parses one vocabulary line of the form
// "word<TAB>lemma<TAB>category<TAB>form". A form of "-" means no
// inflection markers.
func ParseEntry(line string) (string, token.Meaning, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != 4 {
		return "", token.Meaning{}, false
	}
	form := fields[3]
	if form == "-" {
		form = ""
	}
	return fields[0], token.Meaning{
		Lemma:    fields[1],
		Category: fields[2],
		Form:     form,
	}, true
}

// Words returns all word forms in the lexicon, sorted. Used by tests and
// the lexicon importer.
func (m *Memory) Words() []string {
	words := make([]string, 0, len(m.entries))
	for w := range m.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
