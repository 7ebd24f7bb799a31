// Package tt implements a fixed-size shared transposition table for
// game-tree search.
//
// # Overview
//
// The table is a contiguous array of 32-byte clusters, each holding three
// packed 10-byte records, addressed by a 64-bit position key. Independent
// search workers probe and store concurrently with no locks, no atomics and
// no memory fences on the hot path. The table is an advisory cache: a torn
// or stale record degrades search quality marginally, never correctness, so
// the cost of synchronizing every access is deliberately not paid.
//
// # Usage
//
//	table := tt.New(tt.WithExecutor(pool))
//	table.Resize(ctx, 256) // MiB; must be called before first use
//
//	table.NewSearch() // once per analysis request
//
//	found, hit, w := table.Probe(key)
//	if found && hit.Depth >= depth {
//	    // use hit.Value / hit.Move as a search hint
//	}
//	// ... compute a result ...
//	w.Save(key, value, isPV, tt.BoundExact, depth, move, eval)
//
// # Data Races
//
// Probe and Writer.Save intentionally race against each other across
// workers. All record reads happen in one pass and the returned Hit is a
// private copy, so a concurrent write can at worst make a lookup miss or
// pick a slightly wrong eviction victim. This is an accepted benign data
// race, not a bug to be fixed with locks; run the race detector against
// single-worker tests only.
//
// # Maintenance
//
// Resize and Clear invalidate or rewrite all table memory and require that
// no probe or save is in flight. The table never spawns goroutines itself:
// bulk zeroing is delegated to an injected Executor and optionally
// throttled through an injected Throttle.
package tt
