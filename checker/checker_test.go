package checker

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mideind/greynircorrect/grammar"
	"github.com/mideind/greynircorrect/lexicon"
	"github.com/mideind/greynircorrect/parser"
)

func newTestChecker(t *testing.T, opts ...Option) *Checker {
	t.Helper()
	return New(lexicon.Base(), opts...)
}

func checkOne(t *testing.T, c *Checker, text string) *parser.Sentence {
	t.Helper()
	s, err := c.CheckSingle(text)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

func TestCleanSentence(t *testing.T) {
	c := newTestChecker(t)

	s := checkOne(t, c, "Ég hlakka til jólanna.")
	assert.True(t, s.Parsed())
	assert.Empty(t, s.Annotations)
}

func TestCleanImpersonalSentence(t *testing.T) {
	c := newTestChecker(t)

	s := checkOne(t, c, "Mig langar í hús.")
	assert.True(t, s.Parsed())
	assert.Empty(t, s.Annotations)
}

func TestWrongSubjectCase(t *testing.T) {
	c := newTestChecker(t)

	s := checkOne(t, c, "Mér hlakkar til jólanna.")
	require.True(t, s.Parsed())
	require.Len(t, s.Annotations, 1)

	a := s.Annotations[0]
	assert.Equal(t, "E003", a.Code)
	assert.Equal(t, 1, a.Start)
	assert.Equal(t, 1, a.End)
	assert.Equal(t, "Röng fallnotkun með sögninni 'hlakka'", a.Text)
}

func TestNominativeWithStrictlyImpersonalVerb(t *testing.T) {
	c := newTestChecker(t)

	s := checkOne(t, c, "Ég langar í hús.")
	require.True(t, s.Parsed())
	require.Len(t, s.Annotations, 1)
	assert.Equal(t, "E003", s.Annotations[0].Code)
	assert.Equal(t, "Röng fallnotkun með sögninni 'langa'", s.Annotations[0].Text)
}

func TestImperativeWithExplicitSubject(t *testing.T) {
	c := newTestChecker(t)

	s := checkOne(t, c, "Komdu þú.")
	require.True(t, s.Parsed())
	require.Len(t, s.Annotations, 1)
	assert.Equal(t, "E002", s.Annotations[0].Code)
	assert.Equal(t, "Þetta virðist vera málfræðivilla", s.Annotations[0].Text)
}

func TestProgressivePattern(t *testing.T) {
	c := newTestChecker(t)

	s := checkOne(t, c, "Ég er að hlaupa.")
	require.True(t, s.Parsed())
	require.Len(t, s.Annotations, 1)

	a := s.Annotations[0]
	assert.Equal(t, "P001", a.Code)
	assert.Equal(t, 1, a.Start)
	assert.Equal(t, 3, a.End)
}

func TestUnparseableSentence(t *testing.T) {
	c := newTestChecker(t)

	s := checkOne(t, c, "Ég vel.")
	require.False(t, s.Parsed())
	require.Len(t, s.Annotations, 1)

	a := s.Annotations[0]
	assert.Equal(t, "E001", a.Code)
	assert.Equal(t, 0, a.Start)
	assert.Equal(t, len(s.Tokens)-1, a.End)
	assert.Equal(t, "Málsgreinin fellur ekki að reglum", a.Text)
	assert.Contains(t, a.Detail, "2. tóka")
}

func TestUnparseableAtFirstToken(t *testing.T) {
	c := newTestChecker(t)

	// the sentence cannot start with an adverb, so the failure is at
	// token 0 and the quoted window is clamped to the first two tokens
	s := checkOne(t, c, "Vel hlakka ég til jólanna.")
	require.False(t, s.Parsed())
	require.Len(t, s.Annotations, 1)

	a := s.Annotations[0]
	assert.Equal(t, "E001", a.Code)
	assert.Contains(t, a.Detail, "1. tóka")
	assert.Contains(t, a.Detail, "'Vel hlakka'")
}

func TestForeignSentence(t *testing.T) {
	c := newTestChecker(t)

	s := checkOne(t, c, "Ég xxxxx yyyyy.")
	require.Len(t, s.Annotations, 1)

	a := s.Annotations[0]
	assert.Equal(t, "E004", a.Code)
	assert.Equal(t, 0, a.Start)
	assert.Equal(t, len(s.Tokens)-1, a.End)
	assert.Equal(t, "Málsgreinin er sennilega ekki á íslensku", a.Text)
	assert.Contains(t, a.Detail, "67%")
}

func TestForeignGuardNeedsMoreThanTwoWords(t *testing.T) {
	c := newTestChecker(t)

	// two words never trigger the language guard, even when both are
	// unknown; the token-level findings survive
	s := checkOne(t, c, "xxxxx yyyyy.")
	codes := make(map[string]int)
	for _, a := range s.Annotations {
		codes[a.Code]++
	}
	assert.Equal(t, 0, codes["E004"])
	assert.Equal(t, 1, codes["E001"])
	assert.Equal(t, 2, codes["S001"])
}

func TestDuplicateWordFlagged(t *testing.T) {
	c := newTestChecker(t)

	// the duplicate is flagged at token level and kept alongside the
	// parse failure it causes
	s := checkOne(t, c, "Ég hlakka hlakka.")
	codes := []string{}
	for _, a := range s.Annotations {
		codes = append(codes, a.Code)
	}
	assert.Contains(t, codes, "S004")
	assert.Contains(t, codes, "E001")
}

func TestAnnotationsSorted(t *testing.T) {
	c := newTestChecker(t)

	s := checkOne(t, c, "xxxxx yyyyy.")
	for i := 1; i < len(s.Annotations); i++ {
		prev, cur := s.Annotations[i-1], s.Annotations[i]
		ordered := prev.Start < cur.Start ||
			(prev.Start == cur.Start && prev.End >= cur.End)
		assert.True(t, ordered, "annotations out of order: %v before %v", prev, cur)
	}
}

func TestCheckSingleEmptyInput(t *testing.T) {
	c := newTestChecker(t)

	s, err := c.CheckSingle("   ")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestCheckIsIdempotent(t *testing.T) {
	c := newTestChecker(t)

	first := checkOne(t, c, "Mér hlakkar til jólanna.")
	second := checkOne(t, c, "Mér hlakkar til jólanna.")
	assert.Equal(t, first.Annotations, second.Annotations)

	// the parser pipeline is built once and shared
	pair1, err := c.Pipeline().Get()
	require.NoError(t, err)
	pair2, err := c.Pipeline().Get()
	require.NoError(t, err)
	assert.Same(t, pair1, pair2)
}

func TestCheckParagraphs(t *testing.T) {
	c := newTestChecker(t)

	text := "Ég hlakka til jólanna.\n\nMér hlakkar til jólanna. Mig langar í hús."
	res, err := c.CheckWithStats(text, true)
	require.NoError(t, err)

	require.Len(t, res.Paragraphs, 2)
	assert.Len(t, res.Paragraphs[0], 1)
	assert.Len(t, res.Paragraphs[1], 2)

	assert.Equal(t, 3, res.NumSentences)
	assert.Equal(t, 3, res.NumParsed)
	assert.Greater(t, res.NumTokens, 0)
}

func TestCheckLazyStop(t *testing.T) {
	c := newTestChecker(t)

	seq, err := c.Check("Ég hlakka til jólanna. Mig langar í hús.", false)
	require.NoError(t, err)

	seen := 0
	for para := range seq {
		for range para {
			seen++
			break
		}
		break
	}
	assert.Equal(t, 1, seen)
}

func TestGrammarFileStaleness(t *testing.T) {
	src, err := os.ReadFile("../grammar/data/greynir.grammar")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "test.grammar")
	require.NoError(t, os.WriteFile(path, src, 0o644))

	c := newTestChecker(t, WithGrammarPath(path))
	checkOne(t, c, "Ég hlakka til jólanna.")
	before := c.Pipeline().Current()
	require.NotNil(t, before)

	// touching the file without changing it must not rebuild
	require.NoError(t, os.WriteFile(path, src, 0o644))
	checkOne(t, c, "Ég hlakka til jólanna.")
	assert.Same(t, before, c.Pipeline().Current())

	// a content change rebuilds on the next check
	require.NoError(t, os.WriteFile(path, append(src, []byte("\n# changed\n")...), 0o644))
	checkOne(t, c, "Ég hlakka til jólanna.")
	assert.NotSame(t, before, c.Pipeline().Current())
}

func TestPipelineBuildsOnceUnderContention(t *testing.T) {
	var mu sync.Mutex
	builds := 0
	p := NewPipeline(func() (*Pair, error) {
		mu.Lock()
		builds++
		mu.Unlock()
		return &Pair{}, nil
	}, nil)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Get()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, builds)
}

func TestPipelineRebuildsOnStaleSignal(t *testing.T) {
	// the stale check runs on both the lock-free path and the locked
	// re-check; a set signal must survive both and trigger one rebuild
	var stale atomic.Bool
	builds := 0
	p := NewPipeline(func() (*Pair, error) {
		builds++
		stale.Store(false)
		return &Pair{}, nil
	}, func(*Pair) bool { return stale.Load() })

	first, err := p.Get()
	require.NoError(t, err)

	stale.Store(true)
	second, err := p.Get()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, builds)

	third, err := p.Get()
	require.NoError(t, err)
	assert.Same(t, second, third)
	assert.Equal(t, 2, builds)
}

func TestWatchedGrammarRebuild(t *testing.T) {
	src, err := os.ReadFile("../grammar/data/greynir.grammar")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "watched.grammar")
	require.NoError(t, os.WriteFile(path, src, 0o644))

	w, err := grammar.Watch(path)
	require.NoError(t, err)
	defer w.Close()

	c := newTestChecker(t,
		WithGrammarPath(path),
		WithStaleCheck(func(*Pair) bool { return w.Stale() }),
		WithRebuildHook(w.Reset),
	)
	before, err := c.Pipeline().Get()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, append(src, []byte("\n# changed\n")...), 0o644))
	require.Eventually(t, w.Stale, 5*time.Second, 10*time.Millisecond)
	// let every event of the single write drain before rebuilding
	time.Sleep(100 * time.Millisecond)

	after, err := c.Pipeline().Get()
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.False(t, w.Stale())

	again, err := c.Pipeline().Get()
	require.NoError(t, err)
	assert.Same(t, after, again)
}

func TestPipelineInvalidate(t *testing.T) {
	builds := 0
	p := NewPipeline(func() (*Pair, error) {
		builds++
		return &Pair{}, nil
	}, nil)

	first, err := p.Get()
	require.NoError(t, err)
	p.Invalidate()
	second, err := p.Get()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, builds)
}

func TestMinRatioOverride(t *testing.T) {
	// with the guard disabled the unknown words are reported one by one
	c := newTestChecker(t, WithMinRatio(0))

	s := checkOne(t, c, "Ég xxxxx yyyyy.")
	codes := make(map[string]int)
	for _, a := range s.Annotations {
		codes[a.Code]++
	}
	assert.Equal(t, 0, codes["E004"])
	assert.Equal(t, 2, codes["S001"])
}
