package visited

import (
	"fmt"

	"github.com/matthew-mcallister/cammy/internal/camel"
)

// Meta is the per-key record stored on first discovery. It carries
// everything path reconstruction and solution scoring need.
type Meta struct {
	Prev    camel.Key // Predecessor key; meaningful only if HasPrev
	HasPrev bool      // False only for the start state
	Held    int       // Carried amount at first discovery
}

// Stats counts the insertion traffic a shard has seen. The counters are
// plain ints: a shard has exactly one owner, so there is nothing to
// synchronize.
type Stats struct {
	Inserts    int // Keys stored (first discoveries)
	Duplicates int // Insertion attempts discarded as already present
}

// Shard is one partition of the visited-state table: a key→Meta map owned
// exclusively by a single worker. It is not safe for concurrent use and is
// never shared while the search runs.
type Shard struct {
	id     int
	states map[camel.Key]Meta
	stats  Stats
}

// NewShard creates an empty shard with the given partition index.
func NewShard(id int) *Shard {
	return &Shard{
		id:     id,
		states: make(map[camel.Key]Meta),
	}
}

// ID returns the shard's partition index.
func (s *Shard) ID() int {
	return s.id
}

// Insert attempts to record a newly reached state. prev is nil only for
// the start state.
//
// If the key is absent the record is stored and Insert reports true. If
// the key is present the attempt is discarded and Insert reports false;
// the stored Held must be at least the attempted one (monotonic
// first-discovery invariant). A violation means the round ordering the
// whole search rests on is broken, so it aborts the run immediately rather
// than continuing with a corrupt table.
func (s *Shard) Insert(prev *camel.Key, state camel.State) bool {
	if existing, ok := s.states[state.Key]; ok {
		if existing.Held < state.Held {
			panic(fmt.Sprintf(
				"visited: monotonic invariant broken for %s: stored held=%d, attempted held=%d",
				state.Key, existing.Held, state.Held))
		}
		s.stats.Duplicates++
		return false
	}

	meta := Meta{Held: state.Held}
	if prev != nil {
		meta.Prev = *prev
		meta.HasPrev = true
	}
	s.states[state.Key] = meta
	s.stats.Inserts++
	return true
}

// Lookup returns the stored record for key, if any.
func (s *Shard) Lookup(key camel.Key) (Meta, bool) {
	meta, ok := s.states[key]
	return meta, ok
}

// Len returns the number of canonical keys stored.
func (s *Shard) Len() int {
	return len(s.states)
}

// Stats returns the shard's insertion counters.
func (s *Shard) Stats() Stats {
	return s.stats
}
