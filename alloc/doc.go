// Package alloc implements a small set of composable allocator strategies,
// each specialized for one allocation pattern, layered over the raw
// virtual-memory primitives in package vmem.
//
// # Tiers
//
// Allocators are ranked by composition depth:
//
//   - Tier 0 sits directly on the OS virtual-memory boundary:
//     VirtualStackAllocator (bump pointer over one reservation, pages
//     committed on demand) and VirtualAllocator (fixed-size pages with an
//     intrusive free list).
//   - Tier 1 is generic over a backing allocator: StackAllocator (linear
//     allocation over a chain of backing-allocated chunks) and
//     PoolAllocator (fixed-size blocks recycled through per-chunk free
//     lists).
//   - Tier Ω composes other allocators: FallbackAllocator (try the
//     primary, fall back to the secondary) and ScopeAllocator (automatic
//     LIFO finalization on top of any checkpoint-capable allocator).
//
// # Failure model
//
// There are exactly two failure modes:
//
//   - Allocation failure: Allocate returns the empty MemoryBlock. Always
//     recoverable - fall back, grow, or propagate.
//   - Contract violation: deallocating a foreign block, rewinding out of
//     order, over-sized requests against a fixed-size allocator. These are
//     undefined behavior, surfaced only as debug assertions under the
//     "contractchecks" build tag.
//
// Allocation is atomic: the full requested block comes back, or nothing.
//
// # Concurrency
//
// Allocators are single-threaded by contract. No allocator performs
// internal locking; callers that need concurrency use one instance per
// goroutine or synchronize externally.
//
// # Composition example
//
//	pages, err := alloc.NewVirtual(64*memory.MiByte, 16*memory.KiByte)
//	if err != nil {
//	    return err
//	}
//	linear := alloc.NewStack(pages, 4*memory.KiByte)
//	mark := linear.Checkpoint()
//	block := linear.Allocate(300, 8)
//	// ...
//	linear.Rewind(mark)
package alloc
