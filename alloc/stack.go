package alloc

import (
	"github.com/RDFacendola/Syntropy-sub001/internal/contract"
	"github.com/RDFacendola/Syntropy-sub001/memory"
)

// stackChunk is the bookkeeping for one unit of backing storage. The
// bookkeeping lives on the Go heap; only the payload is raw storage. New
// chunks are linked at the head, previous pointing at the old head, so a
// rewind can walk newest-to-oldest.
type stackChunk struct {
	prev        *stackChunk
	storage     memory.MemoryBlock
	alignment   memory.Alignment // alignment the storage was requested with
	unallocated memory.Bytes     // bump cursor within storage
}

// StackAllocator is the Tier-1 linear allocator, generic over any backing
// allocator. It bump-allocates in the current chunk and grows by linking
// new backing-allocated chunks sized in multiples of the configured
// granularity.
//
// Single-block Deallocate is contract-only; reclamation happens in bulk
// via Rewind or DeallocateAll, which return whole chunks to the backing
// allocator.
type StackAllocator[B Allocator] struct {
	backing     B
	granularity memory.Bytes
	head        *stackChunk
	stats       Stats
}

// NewStack creates a linear allocator growing over backing in chunks of at
// least granularity bytes. Pass 0 for the default granularity.
func NewStack[B Allocator](backing B, granularity memory.Bytes) *StackAllocator[B] {
	if granularity <= 0 {
		granularity = DefaultGranularity
	}
	return &StackAllocator[B]{backing: backing, granularity: granularity}
}

// Allocate bump-allocates in the current chunk, linking a new chunk from
// the backing allocator when the current one is exhausted. Returns the
// empty block when the backing allocator fails.
func (a *StackAllocator[B]) Allocate(size memory.Bytes, alignment memory.Alignment) memory.MemoryBlock {
	if size <= 0 || !alignment.IsValid() {
		return memory.MemoryBlock{}
	}

	if block := a.allocateFromHead(size, alignment); !block.IsEmpty() {
		return block
	}

	// Grow: the new chunk must fit the request even after worst-case
	// alignment padding, rounded up to the growth granularity.
	worst := size + alignment.Bytes() - 1
	chunkAlignment := max(alignment, memory.MaxAlignment)
	storage := a.backing.Allocate(worst.CeilTo(a.granularity), chunkAlignment)
	if storage.IsEmpty() {
		return memory.MemoryBlock{}
	}

	a.head = &stackChunk{prev: a.head, storage: storage, alignment: chunkAlignment}

	return a.allocateFromHead(size, alignment)
}

// allocateFromHead slices the request out of the head chunk's unallocated
// tail, or returns the empty block if it does not fit.
func (a *StackAllocator[B]) allocateFromHead(size memory.Bytes, alignment memory.Alignment) memory.MemoryBlock {
	if a.head == nil {
		return memory.MemoryBlock{}
	}

	base := a.head.storage.Address()
	aligned := memory.Bytes(alignment.CeilAddress(base+uintptr(a.head.unallocated)) - base)
	end := aligned + size

	if end > a.head.storage.Size() {
		return memory.MemoryBlock{}
	}

	a.head.unallocated = end
	a.stats.Allocations++
	a.stats.consume(a.inUse())

	return a.head.storage.Slice(aligned, end)
}

// Deallocate is contract-only: it asserts ownership and reclaims nothing.
func (a *StackAllocator[B]) Deallocate(block memory.MemoryBlock, alignment memory.Alignment) {
	contract.Assert(block.IsEmpty() || a.Owns(block), "stack: deallocating a foreign block")
}

// Owns walks the chunk chain testing containment in each allocated span.
func (a *StackAllocator[B]) Owns(block memory.MemoryBlock) bool {
	if block.IsEmpty() {
		return false
	}
	for chunk := a.head; chunk != nil; chunk = chunk.prev {
		if chunk.storage.Slice(0, chunk.unallocated).Contains(block) {
			return true
		}
	}
	return false
}

// Checkpoint captures the current chunk and its bump cursor in O(1).
func (a *StackAllocator[B]) Checkpoint() Checkpoint {
	checkpoint := Checkpoint{owner: a, chunk: a.head}
	if a.head != nil {
		checkpoint.unallocated = a.head.unallocated
	}
	return checkpoint
}

// Rewind releases every chunk newer than the checkpoint's back to the
// backing allocator, newest first, then restores the checkpoint chunk's
// cursor. A checkpoint referring to the current head releases nothing.
// Checkpoints do not outlive the chunk they reference: rewinding to one
// whose chunk was already released is undefined behavior.
func (a *StackAllocator[B]) Rewind(checkpoint Checkpoint) {
	contract.Assert(checkpoint.owner == a, "stack: rewinding a foreign checkpoint")

	for a.head != nil && a.head != checkpoint.chunk {
		chunk := a.head
		a.head = chunk.prev
		chunk.prev = nil
		a.backing.Deallocate(chunk.storage, chunk.alignment)
	}
	contract.Assert(a.head == checkpoint.chunk, "stack: rewinding to a released chunk")

	if a.head != nil {
		a.head.unallocated = checkpoint.unallocated
	}
	a.stats.InUse = a.inUse()
}

// DeallocateAll releases every chunk unconditionally.
func (a *StackAllocator[B]) DeallocateAll() {
	a.Rewind(Checkpoint{owner: a})
}

// Stats returns an activity snapshot.
func (a *StackAllocator[B]) Stats() Stats {
	return a.stats
}

func (a *StackAllocator[B]) inUse() memory.Bytes {
	var total memory.Bytes
	for chunk := a.head; chunk != nil; chunk = chunk.prev {
		total += chunk.unallocated
	}
	return total
}

// Compile-time capability checks against a representative instantiation.
var (
	_ Allocator       = (*StackAllocator[*VirtualAllocator])(nil)
	_ Owner           = (*StackAllocator[*VirtualAllocator])(nil)
	_ BulkDeallocator = (*StackAllocator[*VirtualAllocator])(nil)
	_ RewindAllocator = (*StackAllocator[*VirtualAllocator])(nil)
)
