// Package visited implements the partitioned visited-state table of the
// parallel search: the set of canonical states already discovered, split
// into disjoint shards so that concurrent workers never contend on it.
//
// # Ownership model
//
// The canonical key space is partitioned by a fixed non-cryptographic hash
// (FNV-1a over the key bytes, modulo the worker count). Each shard is a
// plain Go map owned exclusively by one worker for the run's lifetime: only
// the owner ever reads or writes it, so shard contents need no locks at
// all. Cross-worker traffic happens through the engine's per-round message
// channels, never through shared mutation.
//
//	key ──FNV-1a──▶ shard index ──▶ owning worker
//
// The sharding hash is used only for ownership routing. It is deliberately
// distinct from whatever hash organizes each shard's internal map.
//
// # First-write-wins insertion
//
// A key is stored at most once, on first discovery, together with its
// predecessor and the carried amount at that moment. Later insertion
// attempts for the same key are discarded. Discarding is sound because
// expansion proceeds in strict breadth-first round order and bananas are
// only consumed, never created: the first discovery of a key necessarily
// carries the maximum amount ever achievable for it. An insertion attempt
// that proposes a larger amount than the stored one would falsify that
// reasoning, so it aborts the run rather than being papered over.
//
// # Aggregation
//
// After the search terminates the engine hands every shard to a read-only
// Table, which routes lookups through the same sharding hash. That is the
// predecessor-lookup capability path reconstruction is built on.
package visited
