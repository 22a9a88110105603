package alloc

import (
	"github.com/RDFacendola/Syntropy-sub001/internal/contract"
	"github.com/RDFacendola/Syntropy-sub001/memory"
	"github.com/RDFacendola/Syntropy-sub001/vmem"
)

// VirtualStackAllocator is the Tier-0 bump allocator. It grows over a
// single reserved virtual-address range, committing pages on demand in
// steps of a configured granularity.
//
// Two cursors describe its state, with unallocated <= uncommitted always:
//
//	|----- allocated -----|--- committed slack ---|--- reserved only ---|
//	0                unallocated             uncommitted            capacity
//
// Addresses already handed out are never invalidated by later allocations;
// only Rewind or DeallocateAll past their point of issuance reclaims them.
// Single-block Deallocate is unsupported by design and is a no-op.
type VirtualStackAllocator struct {
	buffer      *vmem.VirtualBuffer
	granularity memory.Bytes
	unallocated memory.Bytes
	uncommitted memory.Bytes
	stats       Stats
}

// NewVirtualStack reserves capacity bytes of address space (page-rounded)
// and commits nothing. granularity is the commit step, rounded up to page
// granularity; pass 0 for the default.
func NewVirtualStack(capacity, granularity memory.Bytes) (*VirtualStackAllocator, error) {
	if granularity <= 0 {
		granularity = DefaultGranularity
	}
	buffer, err := vmem.NewVirtualBuffer(capacity)
	if err != nil {
		return nil, err
	}
	return &VirtualStackAllocator{
		buffer:      buffer,
		granularity: vmem.Ceil(granularity),
	}, nil
}

// Allocate bump-allocates size bytes at the requested alignment. Returns
// the empty block when the reservation is exhausted or the commit fails.
func (a *VirtualStackAllocator) Allocate(size memory.Bytes, alignment memory.Alignment) memory.MemoryBlock {
	if size <= 0 || !alignment.IsValid() {
		return memory.MemoryBlock{}
	}

	base := a.buffer.Block().Address()
	aligned := memory.Bytes(alignment.CeilAddress(base+uintptr(a.unallocated)) - base)
	end := aligned + size

	if end > a.buffer.Size() {
		return memory.MemoryBlock{}
	}

	// Commit additional pages in granularity steps before the cursor may
	// cross the committed boundary.
	if end > a.uncommitted {
		commitEnd := min(a.buffer.Size(), a.uncommitted+(end-a.uncommitted).CeilTo(a.granularity))
		if err := vmem.Commit(a.buffer.Block().Slice(a.uncommitted, commitEnd)); err != nil {
			return memory.MemoryBlock{}
		}
		a.uncommitted = commitEnd
	}

	a.unallocated = end
	a.stats.Allocations++
	a.stats.consume(end)

	return a.buffer.Block().Slice(aligned, end)
}

// Deallocate is a no-op: single-block reclamation is unsupported by
// design. Its only effect is the ownership assertion in debug builds.
func (a *VirtualStackAllocator) Deallocate(block memory.MemoryBlock, alignment memory.Alignment) {
	contract.Assert(block.IsEmpty() || a.Owns(block), "virtualstack: deallocating a foreign block")
}

// Owns reports whether block was carved from this allocator and is still
// allocated. O(1) containment test against the allocated span.
func (a *VirtualStackAllocator) Owns(block memory.MemoryBlock) bool {
	if block.IsEmpty() {
		return false
	}
	base := a.buffer.Block().Address()
	return block.Address() >= base && block.End() <= base+uintptr(a.unallocated)
}

// Checkpoint captures both cursors in O(1).
func (a *VirtualStackAllocator) Checkpoint() Checkpoint {
	return Checkpoint{owner: a, unallocated: a.unallocated, uncommitted: a.uncommitted}
}

// Rewind resets the allocator to a previously captured checkpoint,
// decommitting every page committed since. Rewinding to a checkpoint
// produced by another instance, or out of order, is undefined behavior.
func (a *VirtualStackAllocator) Rewind(checkpoint Checkpoint) {
	contract.Assert(checkpoint.owner == a, "virtualstack: rewinding a foreign checkpoint")
	contract.Assert(checkpoint.unallocated <= a.unallocated, "virtualstack: rewinding out of order")

	if checkpoint.uncommitted < a.uncommitted {
		// Best effort: a failed decommit leaves the pages committed but the
		// allocator state stays consistent either way.
		_ = vmem.Decommit(a.buffer.Block().Slice(checkpoint.uncommitted, a.uncommitted))
	}

	a.unallocated = checkpoint.unallocated
	a.uncommitted = checkpoint.uncommitted
	a.stats.InUse = checkpoint.unallocated
}

// DeallocateAll rewinds to the initial state, decommitting everything.
func (a *VirtualStackAllocator) DeallocateAll() {
	a.Rewind(Checkpoint{owner: a})
}

// Capacity returns the total reserved (page-rounded) address space.
func (a *VirtualStackAllocator) Capacity() memory.Bytes {
	return a.buffer.Size()
}

// Stats returns an activity snapshot.
func (a *VirtualStackAllocator) Stats() Stats {
	return a.stats
}

// Close releases the underlying reservation. The allocator must not be
// used afterwards.
func (a *VirtualStackAllocator) Close() error {
	a.DeallocateAll()
	return a.buffer.Release()
}

// Compile-time capability checks.
var (
	_ Allocator       = (*VirtualStackAllocator)(nil)
	_ Owner           = (*VirtualStackAllocator)(nil)
	_ BulkDeallocator = (*VirtualStackAllocator)(nil)
	_ RewindAllocator = (*VirtualStackAllocator)(nil)
)
