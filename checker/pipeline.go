package checker

import (
	"sync"
	"sync/atomic"

	"github.com/mideind/greynircorrect/errfinder"
	"github.com/mideind/greynircorrect/grammar"
	"github.com/mideind/greynircorrect/parser"
	"github.com/mideind/greynircorrect/pattern"
)

// Pair is a parser and the reducer bound to its compiled grammar,
// together with the annotation engines built for that grammar. Pairs are
// immutable and shared read-only between all checking requests.
type Pair struct {
	Parser   *parser.Parser
	Reducer  *parser.Reducer
	Grammar  *grammar.Grammar
	Finder   *errfinder.Finder
	Patterns *pattern.Matcher
}

// Pipeline caches the process-wide Pair. Construction is expensive
// (grammar compilation) and is paid once, amortized across all callers.
//
// Get follows a check-lock-recheck discipline: callers that observe a
// valid pair proceed without taking the lock; callers that observe a
// missing or stale pair serialize on the mutex, re-check, and rebuild at
// most once per staleness event.
type Pipeline struct {
	mu    sync.Mutex
	cur   atomic.Pointer[Pair]
	build func() (*Pair, error)
	stale func(*Pair) bool
}

// NewPipeline creates a pipeline around a build function and a staleness
// check. A nil stale function means pairs never go stale.
func NewPipeline(build func() (*Pair, error), stale func(*Pair) bool) *Pipeline {
	if stale == nil {
		stale = func(*Pair) bool { return false }
	}
	return &Pipeline{build: build, stale: stale}
}

// Get returns the current pair, building or rebuilding it if necessary.
// A build error is returned to every caller that needed the rebuild; no
// retry happens until the next call.
func (p *Pipeline) Get() (*Pair, error) {
	if cur := p.cur.Load(); cur != nil && !p.stale(cur) {
		return cur, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// a racing caller may have rebuilt while we waited for the lock
	if cur := p.cur.Load(); cur != nil && !p.stale(cur) {
		return cur, nil
	}

	pair, err := p.build()
	if err != nil {
		return nil, err
	}
	p.cur.Store(pair)
	return pair, nil
}

// Invalidate discards the current pair so that the next Get rebuilds.
func (p *Pipeline) Invalidate() {
	p.cur.Store(nil)
}

// Current returns the cached pair without building, or nil.
func (p *Pipeline) Current() *Pair {
	return p.cur.Load()
}
