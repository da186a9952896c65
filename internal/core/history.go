// Package core defines the essential interfaces and data structures that form
// the backbone of the application. These components are designed to be
// abstract, allowing for flexible and decoupled implementations of the
// application's logic.
package core

import "time"

// UnknownLabel is the sentinel stored when the client did not report a value.
const UnknownLabel = "unknown"

// HistoryRecord is one persisted review outcome. Records are created exactly
// once and never updated; retrieval is always newest first.
type HistoryRecord struct {
	ID                   int64     `db:"id" json:"id"`
	OriginalCode         string    `db:"original_code" json:"originalCode"`
	ImprovedCode         string    `db:"improved_code" json:"improvedCode"`
	Language             string    `db:"language" json:"language"`
	TimeComplexity       string    `db:"time_complexity" json:"timeComplexity"`
	SpaceComplexity      string    `db:"space_complexity" json:"spaceComplexity"`
	CyclomaticComplexity int       `db:"cyclomatic_complexity" json:"cyclomaticComplexity"`
	ContentHash          string    `db:"content_hash" json:"contentHash"`
	CreatedAt            time.Time `db:"created_at" json:"timestamp"`
}

// HistoryEntry is the write-side input for a history record. The store assigns
// the id, timestamp and content hash.
type HistoryEntry struct {
	OriginalCode string
	ImprovedCode string
	Language     string
	Complexity   Complexity
}
