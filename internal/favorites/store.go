// internal/favorites/store.go
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"cruise-explorer/internal/common/database"
	stderrors "cruise-explorer/internal/common/errors"
	"cruise-explorer/internal/common/logger"
	"cruise-explorer/internal/common/metrics"
)

// Store holds the saved list for a session. The in-memory slice is
// authoritative; persistence is best-effort write-behind to a single Redis
// key, so a write failure degrades durability but never a mutation.
type Store struct {
	db      *database.RedisClient
	key     string
	logger  logger.Logger
	entries []Entry
}

// NewStore loads the persisted list once at startup. A missing key starts
// the list empty silently; corrupt or unreadable state starts it empty with
// a warning.
func NewStore(ctx context.Context, db *database.RedisClient, key string, log logger.Logger) *Store {
	s := &Store{
		db:      db,
		key:     key,
		logger:  log.WithFields(map[string]interface{}{"component": "favorites-store"}),
		entries: []Entry{},
	}

	raw, err := db.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			loadErr := stderrors.NewFavoritesLoadFailedError(err)
			s.logger.Warn("starting with empty list", map[string]interface{}{
				"key":   key,
				"error": loadErr.Error(),
			})
		}
		return s
	}

	var persisted []Entry
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		loadErr := stderrors.NewFavoritesLoadFailedError(err)
		s.logger.Warn("persisted list is corrupt, starting with empty list", map[string]interface{}{
			"key":   key,
			"error": loadErr.Error(),
		})
		return s
	}
	if persisted != nil {
		s.entries = persisted
	}

	s.logger.Info("favorites loaded", map[string]interface{}{
		"key":   key,
		"count": len(s.entries),
	})
	return s
}

// Toggle flips membership of the entry identified by (kind, id). It returns
// true when the entry was added, false when an existing entry was removed.
func (s *Store) Toggle(ctx context.Context, e Entry) bool {
	for i, existing := range s.entries {
		if existing.key() == e.key() {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			metrics.FavoritesMutations.WithLabelValues("remove").Inc()
			s.persist(ctx)
			return false
		}
	}

	e.SavedAt = time.Now().UTC()
	s.entries = append(s.entries, e)
	metrics.FavoritesMutations.WithLabelValues("add").Inc()
	s.persist(ctx)
	return true
}

// Remove deletes every entry carrying the given id regardless of kind.
// Removing an absent id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) {
	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if e.ID == id {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept

	if removed > 0 {
		metrics.FavoritesMutations.WithLabelValues("remove").Inc()
		s.persist(ctx)
	}
}

// Contains reports membership of the (kind, id) pair.
func (s *Store) Contains(kind Kind, id string) bool {
	for _, e := range s.entries {
		if e.Kind == kind && e.ID == id {
			return true
		}
	}
	return false
}

// List returns the saved entries in insertion order.
func (s *Store) List() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Count returns the number of saved entries.
func (s *Store) Count() int {
	return len(s.entries)
}

func (s *Store) persist(ctx context.Context) {
	var err error
	if len(s.entries) == 0 {
		// An emptied list clears the key so the next session loads
		// silently instead of parsing an empty array.
		err = s.db.Del(ctx, s.key)
	} else {
		var payload []byte
		payload, err = json.Marshal(s.entries)
		if err == nil {
			err = s.db.Set(ctx, s.key, payload, 0)
		}
	}
	if err != nil {
		persistErr := stderrors.NewFavoritesPersistFailedError(err)
		s.logger.Warn("favorites write failed, in-memory list unaffected", map[string]interface{}{
			"key":   s.key,
			"error": persistErr.Error(),
		})
	}
}
