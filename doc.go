// Package ttgo provides the shared transposition table of a game-tree
// search engine, with the surrounding lifecycle plumbing:
//
//   - Fixed-size, lock-free probe/store cache of search results, keyed by
//     64-bit position signatures (package tt)
//   - Packed 10-byte records, three per 32-byte cache-line cluster
//   - Aging-based replacement under fixed capacity
//   - Parallel, optionally throttled clear/resize via a fixed worker pool
//   - Off-heap, huge-page-aware backing allocation
//
// # Quick Start
//
//	ctx := context.Background()
//	engine, err := ttgo.New(ctx, ttgo.WithHashSize(256))
//	if err != nil {
//	    panic(err)
//	}
//	defer engine.Close()
//
//	search := engine.NewSearch() // once per analysis request
//	table := engine.Table()
//
//	// Inside search workers (hot path, no locks):
//	found, hit, w := table.Probe(key)
//	if found && hit.Depth >= depth {
//	    // use hit as a search hint
//	}
//	w.Save(key, value, isPV, tt.BoundExact, depth, move, eval)
//
// # Command Layer Mapping
//
// A UCI-style frontend maps directly onto the Engine surface:
//
//	setoption Hash N  -> engine.SetHashSize(ctx, N)
//	ucinewgame        -> engine.NewGame(ctx)
//	go ...            -> engine.NewSearch()
//	info hashfull     -> engine.Hashfull()
//
// # Concurrency
//
// Probe and save are wait-free plain memory operations shared by all
// search workers; see package tt for the benign-race contract. Engine
// lifecycle methods (SetHashSize, NewGame, Close) require the search
// workers to be idle.
package ttgo
