package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon(t *testing.T) {
	m, err := MapAnon(1 << 20)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 1<<20, m.Size())

	data := m.Bytes()
	require.Len(t, data, 1<<20)

	// Anonymous mappings are zero-filled by the kernel.
	assert.Equal(t, byte(0), data[0])
	assert.Equal(t, byte(0), data[len(data)-1])

	// The mapping is writable.
	data[0] = 0xAB
	assert.Equal(t, byte(0xAB), m.Bytes()[0])
}

func TestMapAnon_InvalidSize(t *testing.T) {
	_, err := MapAnon(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = MapAnon(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestMapAnon_Advise(t *testing.T) {
	m, err := MapAnon(1 << 16)
	require.NoError(t, err)
	defer m.Close()

	assert.NoError(t, m.AdviseRandom())
	assert.NoError(t, m.AdviseHugePages())
}

func TestMapAnon_CloseIdempotent(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.AdviseRandom(), ErrClosed)
}
