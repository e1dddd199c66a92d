package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS learners (
	id           TEXT PRIMARY KEY,
	display_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS answer_records (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	learner_id    TEXT    NOT NULL,
	position      INTEGER NOT NULL,
	question_id   TEXT    NOT NULL,
	question_text TEXT    NOT NULL,
	subject       TEXT    NOT NULL,
	difficulty    TEXT    NOT NULL,
	correct       INTEGER NOT NULL,
	chosen_index  INTEGER NOT NULL,
	correct_index INTEGER NOT NULL,
	response_secs REAL    NOT NULL,
	timestamp     TEXT    NOT NULL,
	session_id    TEXT    NOT NULL,
	UNIQUE (learner_id, position),
	FOREIGN KEY (learner_id) REFERENCES learners(id)
);

CREATE INDEX IF NOT EXISTS idx_answer_records_question ON answer_records (learner_id, question_id);
CREATE INDEX IF NOT EXISTS idx_answer_records_session ON answer_records (session_id);
`

// Store persists performance logs in SQLite.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema. A nil logger
// disables logging.
func Open(dsn string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// foreign_keys and synchronous are per-connection pragmas.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	logger.Debug("store opened", zap.String("dsn", dsn))
	return &Store{db: db, log: logger}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. QUIZDUEL_DB environment variable
// 2. $XDG_DATA_HOME/quizduel/quizduel.db
// 3. ~/.local/share/quizduel/quizduel.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUIZDUEL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizduel", "quizduel.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
