package alloc

import (
	"github.com/RDFacendola/Syntropy-sub001/internal/contract"
	"github.com/RDFacendola/Syntropy-sub001/memory"
	"github.com/RDFacendola/Syntropy-sub001/vmem"
)

// VirtualAllocator is the Tier-0 fixed-page allocator: every allocation is
// served from a page of the configured size, either recycled from an
// intrusive free list (fast path) or bump-allocated from an internal
// VirtualStackAllocator.
//
// There is no Rewind: reclamation is strictly per-page. This allocator is
// meant to sit directly under the Tier-1 allocators, which provide bulk
// reclamation themselves.
type VirtualAllocator struct {
	stack    *VirtualStackAllocator
	pageSize memory.Bytes
	freeHead uintptr
	stats    Stats
}

// NewVirtual reserves capacity bytes of address space and serves pages of
// pageSize bytes (rounded up to page granularity) from it.
func NewVirtual(capacity, pageSize memory.Bytes) (*VirtualAllocator, error) {
	pageSize = vmem.Ceil(pageSize)
	stack, err := NewVirtualStack(capacity, pageSize)
	if err != nil {
		return nil, err
	}
	return &VirtualAllocator{stack: stack, pageSize: pageSize}, nil
}

// Allocate returns a block of size bytes at the start of a page. Requests
// exceeding the fixed page size or the page alignment fail with the empty
// block.
func (a *VirtualAllocator) Allocate(size memory.Bytes, alignment memory.Alignment) memory.MemoryBlock {
	if size <= 0 || size > a.pageSize || !alignment.IsValid() || alignment > vmem.PageAlignment() {
		return memory.MemoryBlock{}
	}

	// Fast path: recycle the most recently freed page.
	if a.freeHead != 0 {
		address := a.freeHead
		a.freeHead = loadLink(address)
		a.stats.Allocations++
		a.stats.consume(a.stats.InUse + a.pageSize)
		return memory.BlockAt(address, size)
	}

	page := a.stack.Allocate(a.pageSize, vmem.PageAlignment())
	if page.IsEmpty() {
		return memory.MemoryBlock{}
	}
	a.stats.Allocations++
	a.stats.consume(a.stats.InUse + a.pageSize)
	return page.Slice(0, size)
}

// Deallocate pushes the block's page onto the free list. The page stays
// committed so it can be recycled without another kernel round-trip.
func (a *VirtualAllocator) Deallocate(block memory.MemoryBlock, alignment memory.Alignment) {
	if block.IsEmpty() {
		return
	}
	contract.Assert(a.Owns(block), "virtual: deallocating a foreign block")
	address := block.Address()
	storeLink(address, a.freeHead)
	a.freeHead = address
	a.stats.Deallocations++
	a.stats.InUse -= a.pageSize
}

// Owns delegates the containment test to the internal stack allocator.
func (a *VirtualAllocator) Owns(block memory.MemoryBlock) bool {
	return a.stack.Owns(block)
}

// PageSize returns the fixed size every served page has.
func (a *VirtualAllocator) PageSize() memory.Bytes {
	return a.pageSize
}

// Stats returns an activity snapshot.
func (a *VirtualAllocator) Stats() Stats {
	return a.stats
}

// Close releases the underlying reservation. The allocator must not be
// used afterwards.
func (a *VirtualAllocator) Close() error {
	a.freeHead = 0
	return a.stack.Close()
}

// Compile-time capability checks.
var (
	_ Allocator = (*VirtualAllocator)(nil)
	_ Owner     = (*VirtualAllocator)(nil)
)
