// Package checker exposes spelling and grammar checking for plain text.
//
// Text is tokenized and corrected, parsed with a grammar that includes
// error-detection rules, and each sentence is annotated with positioned
// diagnostics:
//
//	E001: the sentence could not be parsed
//	E002: a nonterminal tagged as erroneous is present in the parse tree
//	E003: an impersonal verb occurs with an incorrect subject case
//	E004: the sentence is probably not in Icelandic
//
// Token-level codes (S001–S004) are attached by the correcting tokenizer.
package checker

import (
	"iter"
	"log/slog"

	"github.com/mideind/greynircorrect/errfinder"
	"github.com/mideind/greynircorrect/grammar"
	"github.com/mideind/greynircorrect/lexicon"
	"github.com/mideind/greynircorrect/parser"
	"github.com/mideind/greynircorrect/pattern"
	"github.com/mideind/greynircorrect/stat"
	"github.com/mideind/greynircorrect/token"
	"github.com/mideind/greynircorrect/tokenizer"
	"github.com/mideind/greynircorrect/verbs"
)

// DefaultMinRatio is the default minimum share of recognized words below
// which a sentence is assumed to be in a foreign language.
const DefaultMinRatio = 0.5

// Checker composes the tokenizer, the shared parser pipeline and the
// sentence annotator. A Checker is safe for concurrent use.
type Checker struct {
	lex      lexicon.Lexicon
	tok      *tokenizer.Tokenizer
	verbs    *verbs.Table
	patterns *pattern.Matcher
	minRatio float64

	grammarPath string
	variant     grammar.Variant
	staleCheck  func(*Pair) bool
	rebuildHook func()

	log      *slog.Logger
	pipeline *Pipeline
}

// Option configures a Checker.
type Option func(*Checker)

// WithMinRatio overrides the foreign-language detection threshold.
func WithMinRatio(ratio float64) Option {
	return func(c *Checker) { c.minRatio = ratio }
}

// WithGrammarPath loads the grammar from a file instead of the embedded
// source. File-backed grammars are rebuilt when their content changes.
func WithGrammarPath(path string) Option {
	return func(c *Checker) { c.grammarPath = path }
}

// WithVerbs overrides the subject-case table.
func WithVerbs(t *verbs.Table) Option {
	return func(c *Checker) { c.verbs = t }
}

// WithPatterns overrides the built-in pattern rules.
func WithPatterns(m *pattern.Matcher) Option {
	return func(c *Checker) { c.patterns = m }
}

// WithStaleCheck overrides the staleness signal of the parser pipeline.
// The check runs on every access, and twice around a rebuild, so it must
// be free of side effects; an external signal is cleared through
// WithRebuildHook instead.
func WithStaleCheck(stale func(*Pair) bool) Option {
	return func(c *Checker) { c.staleCheck = stale }
}

// WithRebuildHook registers a function run after every successful
// pipeline build. Watch-based callers clear their staleness flag here.
func WithRebuildHook(fn func()) Option {
	return func(c *Checker) { c.rebuildHook = fn }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(log *slog.Logger) Option {
	return func(c *Checker) { c.log = log }
}

// New creates a Checker over the given lexicon.
func New(lex lexicon.Lexicon, opts ...Option) *Checker {
	c := &Checker{
		lex:      lex,
		tok:      tokenizer.New(lex),
		verbs:    verbs.Default(),
		patterns: pattern.Default(),
		minRatio: DefaultMinRatio,
		variant:  grammar.ErrorDetecting(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	stale := c.staleCheck
	if stale == nil {
		stale = func(p *Pair) bool { return p.Grammar.Modified() }
	}
	c.pipeline = NewPipeline(c.buildPair, stale)
	return c
}

// buildPair compiles the grammar and constructs a fresh parser, reducer
// and annotation engines. Compilation failure is returned as-is; there
// is no retry.
func (c *Checker) buildPair() (*Pair, error) {
	var g *grammar.Grammar
	var err error
	if c.grammarPath != "" {
		g, err = grammar.Load(c.grammarPath, c.variant)
	} else {
		g, err = grammar.Default(c.variant)
	}
	if err != nil {
		return nil, err
	}

	c.log.Debug("parser pipeline built",
		"grammar", c.grammarPath,
		"rules", len(g.Rules),
		"hash", g.Hash[:12])

	if c.rebuildHook != nil {
		c.rebuildHook()
	}

	return &Pair{
		Parser:   parser.New(g, c.verbs),
		Reducer:  parser.NewReducer(g),
		Grammar:  g,
		Finder:   errfinder.New(g, c.verbs),
		Patterns: c.patterns,
	}, nil
}

// Pipeline exposes the shared parser cache, mainly for explicit
// invalidation.
func (c *Checker) Pipeline() *Pipeline {
	return c.pipeline
}

// process parses, reduces and annotates one sentence.
func (c *Checker) process(pair *Pair, toks []token.Token) *parser.Sentence {
	s := pair.Parser.Parse(toks)
	pair.Reducer.Reduce(s)
	s.Annotations = c.annotate(pair, s)
	return s
}

// CheckSingle checks the first sentence of the text and returns it
// annotated, or nil when the text contains no sentence.
func (c *Checker) CheckSingle(text string) (*parser.Sentence, error) {
	pair, err := c.pipeline.Get()
	if err != nil {
		return nil, err
	}
	for _, para := range c.tok.Paragraphs(text, false) {
		for _, toks := range c.tok.SplitSentences(para) {
			return c.process(pair, toks), nil
		}
	}
	return nil, nil
}

// Paragraph is a lazy sequence of annotated sentences.
type Paragraph = iter.Seq[*parser.Sentence]

// Check returns a lazy sequence of paragraphs, each a lazy sequence of
// sentences. Sentences are parsed and annotated at the moment they are
// produced.
func (c *Checker) Check(text string, splitParagraphs bool) (iter.Seq[Paragraph], error) {
	pair, err := c.pipeline.Get()
	if err != nil {
		return nil, err
	}
	paras := c.tok.Paragraphs(text, splitParagraphs)
	return func(yield func(Paragraph) bool) {
		for _, para := range paras {
			sentences := c.tok.SplitSentences(para)
			inner := func(yield func(*parser.Sentence) bool) {
				for _, toks := range sentences {
					if !yield(c.process(pair, toks)) {
						return
					}
				}
			}
			if !yield(inner) {
				return
			}
		}
	}, nil
}

// Result is the fully materialized output of CheckWithStats.
type Result struct {
	Paragraphs [][]*parser.Sentence
	stat.Stats
}

// CheckWithStats materializes every paragraph and sentence, forcing
// annotation of each, and returns them with aggregate statistics.
func (c *Checker) CheckWithStats(text string, splitParagraphs bool) (*Result, error) {
	seq, err := c.Check(text, splitParagraphs)
	if err != nil {
		return nil, err
	}
	h := stat.NewHandler()
	res := &Result{}
	for para := range seq {
		var sentences []*parser.Sentence
		for s := range para {
			h.Aggregate(s)
			sentences = append(sentences, s)
		}
		res.Paragraphs = append(res.Paragraphs, sentences)
	}
	res.Stats = h.Get()
	return res, nil
}
