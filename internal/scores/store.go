// Package scores keeps the per-item like counts and persists them as one
// JSON snapshot in a key-value store.
package scores

import (
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"sort"

	"github.com/heyojules/flippr/internal/model"
)

// Store is the like tally per item, persisted as one JSON snapshot under a
// single key. It has exactly one writer: the swipe commit path.
type Store struct {
	kv     model.KV
	key    string
	counts map[string]int
}

// Load reads the snapshot stored under key. A missing, unreadable or
// malformed snapshot yields zero counts for every id; Load never fails.
func Load(kv model.KV, key string, ids []string) *Store {
	s := &Store{kv: kv, key: key, counts: make(map[string]int, len(ids))}

	raw, ok, err := kv.Get(key)
	switch {
	case err != nil:
		log.Printf("scores: load %q failed, starting from zero: %v", key, err)
	case ok:
		var stored map[string]int
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			log.Printf("scores: snapshot %q is malformed, starting from zero: %v", key, err)
			break
		}
		for id, n := range stored {
			if n < 0 {
				n = 0
			}
			s.counts[id] = n
		}
	}

	for _, id := range ids {
		if _, ok := s.counts[id]; !ok {
			s.counts[id] = 0
		}
	}
	return s
}

// Count returns the tally for id.
func (s *Store) Count(id string) int {
	return s.counts[id]
}

// Increment adds one like to id and persists the whole snapshot. The
// in-memory count moves even if persisting fails.
func (s *Store) Increment(id string) error {
	s.counts[id]++
	return s.persist()
}

// Snapshot returns a copy of every tally, including ids no longer in the deck.
func (s *Store) Snapshot() map[string]int {
	return maps.Clone(s.counts)
}

// Ranked returns the tallies for ids ordered by count, highest first. Equal
// counts keep the order of ids.
func (s *Store) Ranked(ids []string) []model.Ranking {
	out := make([]model.Ranking, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Ranking{ID: id, Count: s.counts[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func (s *Store) persist() error {
	payload, err := json.Marshal(s.counts)
	if err != nil {
		return fmt.Errorf("scores: marshal: %w", err)
	}
	if err := s.kv.Set(s.key, string(payload)); err != nil {
		return fmt.Errorf("scores: persist %q: %w", s.key, err)
	}
	return nil
}
