package zombiezen

import (
	"context"
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

// sqlFiles embeds the SQL scripts from the sql/ subdirectory.
//
//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateSchema executes the embedded lexicon schema script against a
// connection from the pool. ExecuteScript handles multi-statement strings.
func CreateSchema(pool *sqlitex.Pool) error {
	script, err := sqlFiles.ReadFile("sql/lexicon.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file: %w", err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute lexicon schema: %w", err)
	}

	return nil
}
