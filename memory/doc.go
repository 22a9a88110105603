// Package memory provides the value types the allocator stack is built on:
// strongly-typed byte counts (Bytes), power-of-two alignments (Alignment)
// and non-owning memory views (MemoryBlock).
//
// Nothing in this package allocates. A MemoryBlock is always a view into
// storage owned by someone else - an allocator, a virtual-memory
// reservation, or a plain Go slice. The empty block is the universal
// allocation-failure sentinel used across the whole library: an operation
// either returns the full block it was asked for, or an empty one.
package memory
