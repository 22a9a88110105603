package alloc

import "github.com/RDFacendola/Syntropy-sub001/memory"

// DefaultGranularity is the growth granularity used when a constructor is
// handed a non-positive one: commit steps for the Tier-0 allocators, chunk
// sizes for the Tier-1 allocators.
const DefaultGranularity = 64 * memory.KiByte

// Allocator is the minimal capability every allocator in the stack
// provides, and the minimal requirement a backing allocator must meet.
//
// Allocate returns a block satisfying both size and alignment, or the
// empty block on failure. Deallocate returns a block previously obtained
// from the same instance with the same alignment; passing a foreign block
// is undefined behavior.
type Allocator interface {
	Allocate(size memory.Bytes, alignment memory.Alignment) memory.MemoryBlock
	Deallocate(block memory.MemoryBlock, alignment memory.Alignment)
}

// Owner is the optional capability of answering ownership queries.
type Owner interface {
	Owns(block memory.MemoryBlock) bool
}

// OwningAllocator combines allocation with ownership queries. It is the
// constraint FallbackAllocator places on its primary so that deallocation
// routing is guaranteed at compile time.
type OwningAllocator interface {
	Allocator
	Owner
}

// BulkDeallocator is the optional capability of releasing everything an
// allocator holds in one step.
type BulkDeallocator interface {
	DeallocateAll()
}

// RewindAllocator is the capability ScopeAllocator builds on: checkpoint
// the current state and later rewind to it, bulk-reclaiming everything
// allocated in between.
type RewindAllocator interface {
	Allocator
	Checkpoint() Checkpoint
	Rewind(checkpoint Checkpoint)
}

// Checkpoint is an opaque snapshot of an allocator's state.
//
// Checkpoints form a stack: rewinding to a checkpoint invalidates every
// checkpoint taken after it, and rewinding out of order is undefined
// behavior. A checkpoint may only be passed back to the instance that
// produced it.
type Checkpoint struct {
	owner       any
	chunk       *stackChunk
	unallocated memory.Bytes
	uncommitted memory.Bytes
}
