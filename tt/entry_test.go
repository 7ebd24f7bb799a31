package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_Accessors(t *testing.T) {
	var e Entry
	e.save(0xABCD_1234_5678_9001, 77, true, BoundUpper, 15, Move(0x0F0F), -33, 8, 8)

	assert.Equal(t, Move(0x0F0F), e.Move())
	assert.Equal(t, Value(77), e.Value())
	assert.Equal(t, Value(-33), e.Eval())
	assert.Equal(t, 15, e.Depth())
	assert.True(t, e.IsPV())
	assert.Equal(t, BoundUpper, e.Bound())
	assert.False(t, e.empty())
}

func TestEntry_Age(t *testing.T) {
	var e Entry
	e.save(1, 0, false, BoundLower, 5, MoveNone, 0, 0, 8)

	assert.Equal(t, 0, e.age(0))
	assert.Equal(t, 1, e.age(generationDelta))
	assert.Equal(t, 31, e.age(31*generationDelta))

	// Ages are computed modulo the 5-bit generation cycle, including
	// across counter wraparound.
	e = Entry{}
	gen := uint8(31 * generationDelta)
	e.save(1, 0, false, BoundLower, 5, MoveNone, 0, gen, 8)
	assert.Equal(t, 0, e.age(gen))
	gen += generationDelta // counter wraps to 0
	assert.Equal(t, 1, e.age(gen))
	gen += 3 * generationDelta
	assert.Equal(t, 4, e.age(gen))
}

func TestSave_AgeBiasReplacesStaleDeepData(t *testing.T) {
	const key = uint64(0x55AA)

	var e Entry
	e.save(key, 1, false, BoundLower, 30, Move(1), 0, 0, 8)

	// Same generation: a shallow non-exact result cannot replace.
	e.save(key, 2, false, BoundLower, 4, Move(2), 0, 0, 8)
	assert.Equal(t, 30, e.Depth())

	// Five generations later the age bias has eroded the stored depth's
	// protection, and the same shallow result replaces it.
	e.save(key, 2, false, BoundLower, 4, Move(2), 0, 5*generationDelta, 8)
	assert.Equal(t, 4, e.Depth())
	assert.Equal(t, Value(2), e.Value())
}

func TestSave_PVBonus(t *testing.T) {
	const key = uint64(0x77)

	var e Entry
	e.save(key, 1, false, BoundLower, 10, Move(1), 0, 0, 8)

	// Three below stored depth is exactly the replacement boundary for
	// non-PV data; the PV bonus pushes an equal-aged PV store over it.
	e.save(key, 2, false, BoundLower, 6, Move(2), 0, 0, 8)
	assert.Equal(t, 10, e.Depth())

	e.save(key, 3, true, BoundLower, 6, Move(3), 0, 0, 8)
	assert.Equal(t, 6, e.Depth())
	assert.True(t, e.IsPV())
}
