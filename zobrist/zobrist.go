// Package zobrist generates the random key material for 64-bit position
// hashing.
//
// A position key is built by XOR-ing the table values of every (piece,
// square) pair on the board, plus the side value when the side to move is
// the second player. Incremental updates follow from XOR being its own
// inverse. Keys collide with negligible probability at 64 bits; the
// transposition table additionally truncates them to 16-bit signatures,
// which is a separate, accepted aliasing risk.
package zobrist

// Table holds pseudo-random values for every (piece, square) pair and for
// the side to move. It is immutable after construction and safe for
// concurrent use.
type Table struct {
	pieces [][]uint64 // [piece][square]
	side   uint64
}

// New creates key material for the given piece-type and square counts,
// derived deterministically from seed with a SplitMix64 sequence. The same
// (pieces, squares, seed) triple always yields the same table, so keys are
// stable across processes.
func New(pieces, squares int, seed uint64) *Table {
	next := splitmix64(seed)

	t := &Table{
		pieces: make([][]uint64, pieces),
	}
	for p := range t.pieces {
		t.pieces[p] = make([]uint64, squares)
		for sq := range t.pieces[p] {
			t.pieces[p][sq] = next()
		}
	}
	t.side = next()

	return t
}

// Piece returns the key component for a piece type on a square.
// Out-of-range arguments return 0, the XOR identity.
func (t *Table) Piece(piece, square int) uint64 {
	if piece < 0 || piece >= len(t.pieces) {
		return 0
	}
	row := t.pieces[piece]
	if square < 0 || square >= len(row) {
		return 0
	}
	return row[square]
}

// Side returns the key component for the side to move.
func (t *Table) Side() uint64 {
	return t.side
}

// splitmix64 returns a generator over the SplitMix64 sequence seeded with
// seed. Statistically solid for hashing purposes and trivially portable.
func splitmix64(seed uint64) func() uint64 {
	return func() uint64 {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
}
