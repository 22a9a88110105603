package alloc

import (
	"github.com/RDFacendola/Syntropy-sub001/internal/contract"
	"github.com/RDFacendola/Syntropy-sub001/memory"
)

// poolChunk is the bookkeeping for one backing-allocated chunk of blocks.
// Bookkeeping lives on the Go heap; the blocks themselves are carved out
// of storage. Chunks sit on exactly one of the pool's two doubly-linked
// lists at any time: available (recyclable or fresh capacity left) or
// unavailable (every block handed out).
type poolChunk struct {
	next, prev  *poolChunk
	storage     memory.MemoryBlock
	freeHead    uintptr      // intrusive list of freed blocks, LIFO
	unallocated memory.Bytes // fresh-carve cursor within storage
	allocated   int          // blocks currently handed out
	available   bool         // which list the chunk sits on
}

// PoolAllocator is the Tier-1 fixed-block allocator, generic over any
// backing allocator. Every block has the same configured size and
// alignment; freed blocks are recycled LIFO through a per-chunk intrusive
// free list, which favors address locality.
//
// Chunk reclamation policy: a chunk whose last block is freed is kept and
// moved to the front of the available list rather than returned to the
// backing allocator. This avoids thrashing the backing allocator under
// alloc/free cycles at a chunk boundary; chunks are only returned in bulk
// by DeallocateAll.
type PoolAllocator[B Allocator] struct {
	backing        B
	blockSize      memory.Bytes
	blockAlignment memory.Alignment
	blockStride    memory.Bytes // blockSize rounded up to blockAlignment
	chunkSize      memory.Bytes
	available      *poolChunk
	unavailable    *poolChunk
	stats          Stats
}

// NewPool creates a fixed-block allocator over backing. blockSize is
// raised to the pointer size so freed blocks can hold their free-list
// link; blockAlignment defaults to memory.MaxAlignment and chunkSize to
// the default granularity, and chunkSize always fits at least one block.
func NewPool[B Allocator](backing B, blockSize memory.Bytes, blockAlignment memory.Alignment, chunkSize memory.Bytes) *PoolAllocator[B] {
	if !blockAlignment.IsValid() {
		blockAlignment = memory.MaxAlignment
	}
	blockSize = max(blockSize, memory.SizeOfPointer)
	stride := blockAlignment.Ceil(blockSize)
	if chunkSize <= 0 {
		chunkSize = DefaultGranularity
	}
	chunkSize = max(chunkSize, stride)

	return &PoolAllocator[B]{
		backing:        backing,
		blockSize:      blockSize,
		blockAlignment: blockAlignment,
		blockStride:    stride,
		chunkSize:      chunkSize,
	}
}

// Allocate returns a block of size bytes. Requests exceeding the
// configured block size or alignment fail with the empty block; within
// those limits every allocation is satisfied from the head available
// chunk, recycling its free list before carving fresh blocks.
func (a *PoolAllocator[B]) Allocate(size memory.Bytes, alignment memory.Alignment) memory.MemoryBlock {
	if size <= 0 || size > a.blockSize || !alignment.IsValid() || alignment > a.blockAlignment {
		return memory.MemoryBlock{}
	}

	chunk := a.available
	if chunk == nil {
		storage := a.backing.Allocate(a.chunkSize, a.blockAlignment)
		if storage.IsEmpty() {
			return memory.MemoryBlock{}
		}
		chunk = &poolChunk{storage: storage, available: true}
		pushChunk(&a.available, chunk)
	}

	var address uintptr
	if chunk.freeHead != 0 {
		// LIFO recycle.
		address = chunk.freeHead
		chunk.freeHead = loadLink(address)
	} else {
		address = chunk.storage.Address() + uintptr(chunk.unallocated)
		chunk.unallocated += a.blockStride
	}
	chunk.allocated++

	// A chunk with neither free-list entries nor tail space moves to the
	// unavailable list so it is never considered again until a free.
	if chunk.freeHead == 0 && chunk.unallocated+a.blockStride > chunk.storage.Size() {
		removeChunk(&a.available, chunk)
		pushChunk(&a.unavailable, chunk)
		chunk.available = false
	}

	a.stats.Allocations++
	a.stats.consume(a.stats.InUse + a.blockStride)

	return memory.BlockAt(address, size)
}

// Deallocate pushes the block onto its owning chunk's free list and moves
// that chunk to the front of the available list, so an immediate
// re-request of the same size returns the same address.
func (a *PoolAllocator[B]) Deallocate(block memory.MemoryBlock, alignment memory.Alignment) {
	if block.IsEmpty() {
		return
	}
	chunk := a.chunkOf(block)
	contract.Assert(chunk != nil, "pool: deallocating a foreign block")
	if chunk == nil {
		return
	}

	address := block.Address()
	storeLink(address, chunk.freeHead)
	chunk.freeHead = address
	chunk.allocated--

	if chunk.available {
		if a.available != chunk {
			removeChunk(&a.available, chunk)
			pushChunk(&a.available, chunk)
		}
	} else {
		removeChunk(&a.unavailable, chunk)
		pushChunk(&a.available, chunk)
		chunk.available = true
	}

	a.stats.Deallocations++
	a.stats.InUse -= a.blockStride
}

// Owns reports whether block was carved from one of this pool's chunks.
// Linear scan of both chunk lists; chunk counts stay small relative to
// block counts.
func (a *PoolAllocator[B]) Owns(block memory.MemoryBlock) bool {
	return a.chunkOf(block) != nil
}

// DeallocateAll returns every chunk from both lists to the backing
// allocator.
func (a *PoolAllocator[B]) DeallocateAll() {
	for _, head := range []*poolChunk{a.available, a.unavailable} {
		for chunk := head; chunk != nil; {
			next := chunk.next
			a.backing.Deallocate(chunk.storage, a.blockAlignment)
			chunk.next, chunk.prev = nil, nil
			chunk = next
		}
	}
	a.available, a.unavailable = nil, nil
	a.stats.InUse = 0
}

// BlockSize returns the fixed block size.
func (a *PoolAllocator[B]) BlockSize() memory.Bytes {
	return a.blockSize
}

// Stats returns an activity snapshot.
func (a *PoolAllocator[B]) Stats() Stats {
	return a.stats
}

// chunkOf finds the chunk whose storage contains block, searching the
// available list first.
func (a *PoolAllocator[B]) chunkOf(block memory.MemoryBlock) *poolChunk {
	if block.IsEmpty() {
		return nil
	}
	address := block.Address()
	for _, head := range []*poolChunk{a.available, a.unavailable} {
		for chunk := head; chunk != nil; chunk = chunk.next {
			if chunk.storage.ContainsAddress(address) {
				return chunk
			}
		}
	}
	return nil
}

// pushChunk links chunk at the front of the list rooted at head.
func pushChunk(head **poolChunk, chunk *poolChunk) {
	chunk.prev = nil
	chunk.next = *head
	if *head != nil {
		(*head).prev = chunk
	}
	*head = chunk
}

// removeChunk unlinks chunk from the list rooted at head.
func removeChunk(head **poolChunk, chunk *poolChunk) {
	if chunk.prev != nil {
		chunk.prev.next = chunk.next
	} else {
		*head = chunk.next
	}
	if chunk.next != nil {
		chunk.next.prev = chunk.prev
	}
	chunk.next, chunk.prev = nil, nil
}

// Compile-time capability checks against a representative instantiation.
var (
	_ Allocator       = (*PoolAllocator[*VirtualAllocator])(nil)
	_ Owner           = (*PoolAllocator[*VirtualAllocator])(nil)
	_ BulkDeallocator = (*PoolAllocator[*VirtualAllocator])(nil)
)
