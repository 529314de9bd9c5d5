package visited

import (
	"hash/fnv"

	"github.com/matthew-mcallister/cammy/internal/camel"
)

// ShardFor maps a canonical key to the index of its owning shard.
//
// The hash is FNV-1a over the key's position (little endian) and packed
// pile bytes, reduced modulo the shard count. It is fixed for the run so
// every worker routes a given key to the same owner, and it is used only
// for ownership: each shard's internal map hashes keys its own way.
func ShardFor(key camel.Key, numShards int) int {
	h := fnv.New32a()
	h.Write([]byte{byte(key.X), byte(key.X >> 8)})
	h.Write([]byte(key.Piles))
	return int(h.Sum32()) % numShards
}

// Table is the read-only aggregation of all shards, assembled once the
// search has terminated. It routes lookups through the same sharding hash
// the workers used, so any key discovered during the run can be resolved
// to its stored record.
type Table struct {
	shards []*Shard
}

// NewTable assembles a table from the complete shard set. The slice index
// of each shard must equal its partition index.
func NewTable(shards []*Shard) *Table {
	return &Table{shards: shards}
}

// Lookup resolves key to its stored record by hashing into the owning
// shard.
func (t *Table) Lookup(key camel.Key) (Meta, bool) {
	return t.shards[ShardFor(key, len(t.shards))].Lookup(key)
}

// Size returns the total number of distinct canonical states discovered,
// summed over all shards.
func (t *Table) Size() int {
	total := 0
	for _, s := range t.shards {
		total += s.Len()
	}
	return total
}
