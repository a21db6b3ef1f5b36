package transcriptcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Key identifies one cached transcription result. Two runs hit the same
// entry only when the audio content, span, model, and language all match.
type Key struct {
	AudioSHA256 string
	StartMS     int64
	EndMS       int64
	Model       string
	Language    string
}

func (k Key) validate() error {
	if strings.TrimSpace(k.AudioSHA256) == "" {
		return errors.New("transcript cache: audio digest required")
	}
	if k.EndMS <= k.StartMS {
		return fmt.Errorf("transcript cache: invalid span %d..%d", k.StartMS, k.EndMS)
	}
	if strings.TrimSpace(k.Model) == "" {
		return errors.New("transcript cache: model required")
	}
	return nil
}

// Store persists transcriber JSON payloads keyed by audio span, backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the transcript cache database under dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, "transcripts.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Lookup returns the cached payload for the key, or found=false on a miss.
func (s *Store) Lookup(ctx context.Context, key Key) (payload []byte, found bool, err error) {
	if err := key.validate(); err != nil {
		return nil, false, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT payload FROM transcripts
		 WHERE audio_sha256 = ? AND start_ms = ? AND end_ms = ? AND model = ? AND language = ?`,
		key.AudioSHA256, key.StartMS, key.EndMS, key.Model, key.Language)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("transcript cache lookup: %w", err)
	}
	return payload, true, nil
}

// Save stores or replaces the payload for the key.
func (s *Store) Save(ctx context.Context, key Key, payload []byte) error {
	if err := key.validate(); err != nil {
		return err
	}
	if len(payload) == 0 {
		return errors.New("transcript cache: empty payload")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transcripts (audio_sha256, start_ms, end_ms, model, language, payload)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (audio_sha256, start_ms, end_ms, model, language)
		 DO UPDATE SET payload = excluded.payload, created_at = datetime('now')`,
		key.AudioSHA256, key.StartMS, key.EndMS, key.Model, key.Language, payload)
	if err != nil {
		return fmt.Errorf("transcript cache save: %w", err)
	}
	return nil
}

// Count returns the number of cached transcripts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM transcripts").Scan(&count); err != nil {
		return 0, fmt.Errorf("transcript cache count: %w", err)
	}
	return count, nil
}
