// Package storage implements the content-addressed history store.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/sevigo/code-mentor/internal/core"
	"github.com/sevigo/code-mentor/internal/db"
)

// MaxListLimit caps how many records a single List call may return.
const MaxListLimit = 100

// Store defines the interface for the history persistence layer.
type Store interface {
	// Record persists one (original, improved) pair. It reports whether a new
	// row was created; a repeat of an identical pair is a no-op with
	// inserted=false, never an error.
	Record(ctx context.Context, entry core.HistoryEntry) (inserted bool, err error)

	// List returns up to limit records, newest first. An empty store yields
	// an empty slice.
	List(ctx context.Context, limit int) ([]core.HistoryRecord, error)
}

type sqliteStore struct {
	db     *db.DB
	logger *slog.Logger
}

// NewStore creates a Store backed by the SQLite database.
func NewStore(database *db.DB, logger *slog.Logger) Store {
	return &sqliteStore{db: database, logger: logger}
}

// ContentHash computes the deduplication key for a code pair: the hex SHA-256
// digest of the original code immediately followed by the improved code.
func ContentHash(originalCode, improvedCode string) string {
	h := sha256.New()
	h.Write([]byte(originalCode))
	h.Write([]byte(improvedCode))
	return hex.EncodeToString(h.Sum(nil))
}

// Record validates the entry, fills in sentinel defaults, and performs an
// idempotent insert keyed on the content hash. The UNIQUE constraint on
// content_hash serializes racing inserts so at most one row per hash commits.
func (s *sqliteStore) Record(ctx context.Context, entry core.HistoryEntry) (bool, error) {
	if entry.OriginalCode == "" {
		return false, core.NewValidationError("originalCode", "must not be empty")
	}
	if entry.ImprovedCode == "" {
		return false, core.NewValidationError("improvedCode", "must not be empty")
	}

	language := entry.Language
	if language == "" {
		language = core.UnknownLabel
	}
	timeComplexity := entry.Complexity.Time
	if timeComplexity == "" {
		timeComplexity = core.UnknownLabel
	}
	spaceComplexity := entry.Complexity.Space
	if spaceComplexity == "" {
		spaceComplexity = core.UnknownLabel
	}
	cyclomatic := entry.Complexity.Cyclomatic
	if cyclomatic < 0 {
		cyclomatic = 0
	}

	hash := ContentHash(entry.OriginalCode, entry.ImprovedCode)

	query := `
		INSERT INTO history (
			original_code, improved_code, language,
			time_complexity, space_complexity, cyclomatic_complexity,
			content_hash, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_hash) DO NOTHING`

	res, err := s.db.ExecContext(ctx, query,
		entry.OriginalCode, entry.ImprovedCode, language,
		timeComplexity, spaceComplexity, cyclomatic,
		hash, time.Now().UTC(),
	)
	if err != nil {
		s.logger.Error("failed to insert history record", "hash", hash, "error", err)
		return false, &core.InternalError{Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		s.logger.Error("failed to read insert result", "hash", hash, "error", err)
		return false, &core.InternalError{Err: err}
	}

	if affected == 0 {
		s.logger.Debug("history record already present", "hash", hash)
		return false, nil
	}
	return true, nil
}

// List retrieves the most recent records, newest first. Limits outside
// (0, MaxListLimit] are clamped to MaxListLimit.
func (s *sqliteStore) List(ctx context.Context, limit int) ([]core.HistoryRecord, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	query := `
		SELECT id, original_code, improved_code, language,
		       time_complexity, space_complexity, cyclomatic_complexity,
		       content_hash, created_at
		FROM history
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	records := make([]core.HistoryRecord, 0, limit)
	if err := s.db.SelectContext(ctx, &records, query, limit); err != nil {
		s.logger.Error("failed to list history records", "error", err)
		return nil, &core.InternalError{Err: err}
	}
	return records, nil
}
