package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RDFacendola/Syntropy-sub001/memory"
)

// finalizeOrder records the ids of finalized widgets. Package-level so the
// widgets themselves stay free of Go-heap pointers, which scope storage
// must not hold.
var finalizeOrder []int32

// widget is a scope-constructed object with observable teardown.
type widget struct {
	id      int32
	payload [24]byte
}

func (w *widget) Finalize() {
	finalizeOrder = append(finalizeOrder, w.id)
}

var _ Finalizable = (*widget)(nil)

// Three objects constructed in a scope are finalized in reverse order at
// Close, and their memory is reclaimed.
func TestScope_FinalizeLIFO(t *testing.T) {
	inner := newTestStack(t, 1*memory.MiByte, 0)
	finalizeOrder = nil

	scope := NewScope(inner)
	for id := int32(1); id <= 3; id++ {
		w := New[widget](scope)
		require.NotNil(t, w)
		w.id = id
	}

	scope.Close()

	assert.Equal(t, []int32{3, 2, 1}, finalizeOrder, "reverse-construction order")
}

func TestScope_CloseReclaimsMemory(t *testing.T) {
	inner := newTestStack(t, 1*memory.MiByte, 0)
	finalizeOrder = nil

	scope := NewScope(inner)
	blocks := make([]memory.MemoryBlock, 3)
	for i := range blocks {
		w := New[widget](scope)
		require.NotNil(t, w)
		blocks[i] = memory.BlockAt(uintptr(unsafe.Pointer(w)), memory.Bytes(unsafe.Sizeof(*w)))
	}
	for _, block := range blocks {
		require.True(t, inner.Owns(block))
	}

	scope.Close()

	for i, block := range blocks {
		assert.False(t, inner.Owns(block), "object %d memory reclaimed", i)
	}
}

func TestScope_DeferOrder(t *testing.T) {
	inner := newTestStack(t, 1*memory.MiByte, 0)
	finalizeOrder = nil

	scope := NewScope(inner)
	scope.Defer(func() { finalizeOrder = append(finalizeOrder, -1) })
	w := New[widget](scope)
	require.NotNil(t, w)
	w.id = 7
	scope.Defer(func() { finalizeOrder = append(finalizeOrder, -2) })

	scope.Close()

	assert.Equal(t, []int32{-2, 7, -1}, finalizeOrder, "finalizers and deferred functions share one LIFO list")
}

func TestScope_NewZeroesStorage(t *testing.T) {
	inner := newTestStack(t, 1*memory.MiByte, 0)

	// Dirty the storage, rewind, then construct over the same bytes.
	block := inner.Allocate(256, 16)
	for i := range block.Data() {
		block.Data()[i] = 0xFF
	}
	inner.DeallocateAll()

	scope := NewScope(inner)
	w := New[widget](scope)
	require.NotNil(t, w)
	assert.Equal(t, int32(0), w.id)
	assert.Equal(t, [24]byte{}, w.payload)
	scope.Close()
}

func TestScope_NewFailure(t *testing.T) {
	inner := newTestStack(t, 64*memory.KiByte, 0)
	require.False(t, inner.Allocate(inner.Capacity(), 1).IsEmpty())

	scope := NewScope(inner)
	assert.Nil(t, New[widget](scope), "exhausted allocator surfaces as nil")
	scope.Close()
}

func TestScope_AllocatePassThrough(t *testing.T) {
	inner := newTestStack(t, 1*memory.MiByte, 0)

	scope := NewScope(inner)
	block := scope.Allocate(300, 8)
	require.False(t, block.IsEmpty())
	assert.True(t, inner.Owns(block))

	scope.Close()
	assert.False(t, inner.Owns(block), "pass-through allocations are reclaimed with the scope")
}

func TestScope_Nesting(t *testing.T) {
	inner := newTestStack(t, 1*memory.MiByte, 0)
	finalizeOrder = nil

	outer := NewScope(inner)
	w1 := New[widget](outer)
	w1.id = 1

	nested := NewScope(inner)
	w2 := New[widget](nested)
	w2.id = 2
	nested.Close()

	require.Equal(t, []int32{2}, finalizeOrder, "closing the nested scope leaves the outer alone")

	outer.Close()
	assert.Equal(t, []int32{2, 1}, finalizeOrder)
}
