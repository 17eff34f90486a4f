// Package identity provides the durable anonymous session identity.
package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/ashureev/cooked/internal/store"
)

var anonIDPattern = regexp.MustCompile(`^anon_[a-f0-9]{32}$`)

// Store hands out the installation's anonymous session identifier.
// The identifier is created once, persisted, and never rotated.
type Store struct {
	repo store.Repository

	// cached holds the id for this run once resolved, including the
	// ephemeral fallback when persistence is unavailable.
	cached string
}

// NewStore creates an identity store backed by repo.
func NewStore(repo store.Repository) *Store {
	return &Store{repo: repo}
}

func generateAnonID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate anonymous id: %w", err)
	}
	return "anon_" + hex.EncodeToString(buf), nil
}

func isValidAnonID(id string) bool {
	return anonIDPattern.MatchString(id)
}

// GetOrCreate returns the persisted session identifier, creating and storing
// a fresh one on first use. When the persistence medium is unavailable it
// degrades to an unpersisted identifier for this run instead of failing:
// session loss only affects analytics continuity, not the current exchange.
func (s *Store) GetOrCreate(ctx context.Context) string {
	if s.cached != "" {
		return s.cached
	}

	if existing, ok, err := s.repo.Get(ctx, store.KeySessionID); err == nil && ok && isValidAnonID(existing) {
		s.cached = existing
		return existing
	} else if err != nil {
		slog.Warn("identity: read failed, degrading to ephemeral id", "error", err)
	}

	id, err := generateAnonID()
	if err != nil {
		// crypto/rand failing is effectively unrecoverable; keep the
		// client alive with a constant marker rather than crashing.
		slog.Error("identity: random generation failed", "error", err)
		id = "anon_00000000000000000000000000000000"
	}

	if err := s.repo.Set(ctx, store.KeySessionID, id); err != nil {
		slog.Warn("identity: persist failed, id will not survive restart", "error", err)
	}

	s.cached = id
	return id
}
