package zombiezen

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/xrash/smetrics"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/mideind/greynircorrect/lexicon"
	"github.com/mideind/greynircorrect/token"
)

// Store is a sqlite-backed Lexicon for full-size vocabularies.
type Store struct {
	pool *sqlitex.Pool
}

var _ lexicon.Lexicon = (*Store)(nil)

func NewStore(pool *sqlitex.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Lookup(word string) []token.Meaning {
	ms := s.lookupExact(word)
	if len(ms) == 0 && word != strings.ToLower(word) {
		ms = s.lookupExact(strings.ToLower(word))
	}
	return ms
}

func (s *Store) lookupExact(word string) []token.Meaning {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil
	}
	defer s.pool.Put(conn)

	var meanings []token.Meaning
	err = sqlitex.Execute(conn,
		"SELECT lemma, category, form FROM meanings WHERE word = ?",
		&sqlitex.ExecOptions{
			Args: []interface{}{word},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				meanings = append(meanings, token.Meaning{
					Lemma:    stmt.ColumnText(0),
					Category: stmt.ColumnText(1),
					Form:     stmt.ColumnText(2),
				})
				return nil
			},
		})
	if err != nil {
		return nil
	}
	return meanings
}

func (s *Store) Contains(word string) bool {
	return len(s.Lookup(word)) > 0
}

func (s *Store) IsPerson(name string) bool {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return false
	}
	defer s.pool.Put(conn)

	found := false
	err = sqlitex.Execute(conn,
		"SELECT 1 FROM persons WHERE name = ?",
		&sqlitex.ExecOptions{
			Args: []interface{}{name},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				found = true
				return nil
			},
		})
	return err == nil && found
}

// Suggest scans candidates within one character of the word's length and
// returns the lexicographically smallest word form at edit distance 1.
func (s *Store) Suggest(word string) (string, bool) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return "", false
	}
	defer s.pool.Put(conn)

	lower := strings.ToLower(word)
	runes := utf8.RuneCountInString(lower)
	best := ""
	err = sqlitex.Execute(conn,
		"SELECT DISTINCT word FROM meanings WHERE length(word) BETWEEN ? AND ? ORDER BY word",
		&sqlitex.ExecOptions{
			Args: []interface{}{runes - 1, runes + 1},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				cand := stmt.ColumnText(0)
				if best != "" {
					return nil
				}
				if smetrics.WagnerFischer(lower, cand, 1, 1, 1) == 1 {
					best = cand
				}
				return nil
			},
		})
	if err != nil {
		return "", false
	}
	return best, best != ""
}

// Import bulk-loads vocabulary entries inside a single transaction.
// onProgress, if non-nil, is called after each entry with the running
// count.
func (s *Store) Import(entries []lexicon.Entry, onProgress func(done int)) error {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	endFn, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return err
	}
	defer endFn(&err)

	for i, e := range entries {
		if e.Meaning.Category == "person" {
			err = sqlitex.Execute(conn,
				"INSERT OR IGNORE INTO persons (name) VALUES (?)",
				&sqlitex.ExecOptions{Args: []interface{}{e.Word}})
		} else {
			err = sqlitex.Execute(conn,
				"INSERT INTO meanings (word, lemma, category, form) VALUES (?, ?, ?, ?)",
				&sqlitex.ExecOptions{Args: []interface{}{
					e.Word, e.Meaning.Lemma, e.Meaning.Category, e.Meaning.Form,
				}})
		}
		if err != nil {
			return err
		}
		if onProgress != nil {
			onProgress(i + 1)
		}
	}
	return nil
}
