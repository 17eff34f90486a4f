// Package history persists the append-only log of evaluated turns, kept
// separate from the transient on-screen conversation for later analysis.
package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ashureev/cooked/internal/domain"
	"github.com/ashureev/cooked/internal/store"
)

// Log appends turn records to durable storage. The whole log lives as one
// JSON array under a fixed key; each append is a read-modify-write of that
// array. Fine at the scale of a single user's local history, and there are
// no concurrent writers in this client-only design.
type Log struct {
	repo store.Repository
}

// NewLog creates a history log backed by repo.
func NewLog(repo store.Repository) *Log {
	return &Log{repo: repo}
}

// Record appends one entry to the persisted log.
func (l *Log) Record(ctx context.Context, entry domain.HistoryEntry) error {
	entries, err := l.All(ctx)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if err := l.repo.Set(ctx, store.KeyHistory, string(data)); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// All returns every recorded entry in append order. A missing key is an
// empty log, not an error.
func (l *Log) All(ctx context.Context) ([]domain.HistoryEntry, error) {
	raw, ok, err := l.repo.Get(ctx, store.KeyHistory)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}
