package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RDFacendola/Syntropy-sub001/memory"
	"github.com/RDFacendola/Syntropy-sub001/vmem"
)

func newTestVirtual(t *testing.T, capacity, pageSize memory.Bytes) *VirtualAllocator {
	t.Helper()
	a, err := NewVirtual(capacity, pageSize)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestVirtual_Allocate(t *testing.T) {
	a := newTestVirtual(t, 1*memory.MiByte, 16*memory.KiByte)

	block := a.Allocate(100, 16)
	require.False(t, block.IsEmpty())
	assert.Equal(t, memory.Bytes(100), block.Size())
	assert.True(t, block.IsAlignedTo(vmem.PageAlignment()), "blocks start at page boundaries")
	assert.True(t, a.Owns(block))

	block.Data()[99] = 0xEE
}

func TestVirtual_RejectsOversize(t *testing.T) {
	a := newTestVirtual(t, 1*memory.MiByte, 16*memory.KiByte)

	assert.True(t, a.Allocate(a.PageSize()+1, 16).IsEmpty(), "request above the fixed page size")
	assert.True(t, a.Allocate(64, 2*vmem.PageAlignment()).IsEmpty(), "alignment above page alignment")
	assert.False(t, a.Allocate(a.PageSize(), vmem.PageAlignment()).IsEmpty(), "limits themselves are fine")
}

func TestVirtual_FreeListReuse(t *testing.T) {
	a := newTestVirtual(t, 1*memory.MiByte, 16*memory.KiByte)

	first := a.Allocate(100, 16)
	second := a.Allocate(100, 16)
	require.NotEqual(t, first.Address(), second.Address())

	// LIFO: the page freed last comes back first.
	a.Deallocate(first, 16)
	a.Deallocate(second, 16)

	assert.Equal(t, second.Address(), a.Allocate(100, 16).Address())
	assert.Equal(t, first.Address(), a.Allocate(100, 16).Address())
}

func TestVirtual_PagesAreDistinct(t *testing.T) {
	a := newTestVirtual(t, 1*memory.MiByte, 16*memory.KiByte)

	first := a.Allocate(a.PageSize(), 16)
	second := a.Allocate(a.PageSize(), 16)

	distance := second.Address() - first.Address()
	assert.GreaterOrEqual(t, distance, uintptr(a.PageSize()), "pages never overlap")
}

func TestVirtual_Exhaustion(t *testing.T) {
	pageSize := vmem.Ceil(1)
	a := newTestVirtual(t, 2*pageSize, pageSize)

	first := a.Allocate(64, 8)
	second := a.Allocate(64, 8)
	require.False(t, first.IsEmpty())
	require.False(t, second.IsEmpty())

	assert.True(t, a.Allocate(64, 8).IsEmpty(), "reservation exhausted")

	// Per-page reclamation makes room again.
	a.Deallocate(first, 8)
	assert.Equal(t, first.Address(), a.Allocate(64, 8).Address())
}

func TestVirtual_OwnsForeign(t *testing.T) {
	a := newTestVirtual(t, 1*memory.MiByte, 16*memory.KiByte)
	b := newTestVirtual(t, 1*memory.MiByte, 16*memory.KiByte)

	block := a.Allocate(64, 8)
	assert.True(t, a.Owns(block))
	assert.False(t, b.Owns(block))
}

func TestVirtual_Stats(t *testing.T) {
	a := newTestVirtual(t, 1*memory.MiByte, 16*memory.KiByte)

	block := a.Allocate(64, 8)
	a.Allocate(64, 8)
	a.Deallocate(block, 8)

	stats := a.Stats()
	assert.Equal(t, int64(2), stats.Allocations)
	assert.Equal(t, int64(1), stats.Deallocations)
	assert.Equal(t, a.PageSize(), stats.InUse)
	assert.Equal(t, 2*a.PageSize(), stats.Peak)
}
