package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlock_Empty(t *testing.T) {
	var empty MemoryBlock
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, Bytes(0), empty.Size())
	assert.Equal(t, uintptr(0), empty.Address())
	assert.False(t, empty.Contains(empty), "the empty block contains nothing, not even itself")

	assert.True(t, BlockOf(nil).IsEmpty())
	assert.True(t, BlockOf([]byte{}).IsEmpty())
}

func TestMemoryBlock_View(t *testing.T) {
	storage := make([]byte, 64)
	block := BlockOf(storage)

	require.False(t, block.IsEmpty())
	assert.Equal(t, Bytes(64), block.Size())
	assert.Equal(t, block.Address()+64, block.End())

	// The view aliases the storage.
	block.Data()[0] = 0xAB
	assert.Equal(t, byte(0xAB), storage[0])
}

func TestMemoryBlock_Slice(t *testing.T) {
	block := BlockOf(make([]byte, 64))

	inner := block.Slice(16, 48)
	assert.Equal(t, Bytes(32), inner.Size())
	assert.Equal(t, block.Address()+16, inner.Address())
	assert.True(t, block.Contains(inner))
	assert.False(t, inner.Contains(block))

	assert.True(t, block.Slice(0, 0).IsEmpty())
}

func TestMemoryBlock_ContainsAddress(t *testing.T) {
	block := BlockOf(make([]byte, 64))

	assert.True(t, block.ContainsAddress(block.Address()))
	assert.True(t, block.ContainsAddress(block.End()-1))
	assert.False(t, block.ContainsAddress(block.End()), "end is exclusive")
}

func TestMemoryBlock_Disjoint(t *testing.T) {
	first := BlockOf(make([]byte, 32))
	second := BlockOf(make([]byte, 32))

	assert.False(t, first.Contains(second))
	assert.False(t, second.Contains(first))
}

func TestBlockAt_RoundTrip(t *testing.T) {
	storage := make([]byte, 64)
	block := BlockOf(storage)

	rebuilt := BlockAt(block.Address(), 64)
	require.Equal(t, block.Address(), rebuilt.Address())
	require.Equal(t, block.Size(), rebuilt.Size())

	rebuilt.Data()[5] = 0xCD
	assert.Equal(t, byte(0xCD), storage[5])

	assert.True(t, BlockAt(0, 64).IsEmpty())
	assert.True(t, BlockAt(block.Address(), 0).IsEmpty())
}

func TestMemoryBlock_Zero(t *testing.T) {
	storage := []byte{1, 2, 3, 4}
	BlockOf(storage).Zero()
	assert.Equal(t, []byte{0, 0, 0, 0}, storage)
}

func TestMemoryBlock_IsAlignedTo(t *testing.T) {
	storage := make([]byte, 64)
	block := BlockOf(storage)

	aligned := Alignment(16).CeilAddress(block.Address())
	offset := Bytes(aligned - block.Address())
	assert.True(t, block.Slice(offset, offset+16).IsAlignedTo(16))
}
