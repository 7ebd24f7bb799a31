package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Deterministic(t *testing.T) {
	a := New(12, 64, 42)
	b := New(12, 64, 42)

	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			require.Equal(t, a.Piece(p, sq), b.Piece(p, sq))
		}
	}
	assert.Equal(t, a.Side(), b.Side())

	c := New(12, 64, 43)
	assert.NotEqual(t, a.Piece(0, 0), c.Piece(0, 0))
}

func TestTable_NoDuplicates(t *testing.T) {
	tab := New(12, 64, 0x9E3779B97F4A7C15)

	seen := make(map[uint64]bool, 12*64+1)
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			k := tab.Piece(p, sq)
			assert.NotZero(t, k)
			assert.False(t, seen[k], "duplicate key for piece %d square %d", p, sq)
			seen[k] = true
		}
	}
	assert.False(t, seen[tab.Side()])
}

func TestTable_OutOfRange(t *testing.T) {
	tab := New(2, 8, 1)

	assert.Zero(t, tab.Piece(-1, 0))
	assert.Zero(t, tab.Piece(2, 0))
	assert.Zero(t, tab.Piece(0, -1))
	assert.Zero(t, tab.Piece(0, 8))
}
