package vmem

import (
	"os"

	"github.com/RDFacendola/Syntropy-sub001/memory"
)

// PageSize returns the size of a virtual-memory page.
func PageSize() memory.Bytes {
	return memory.Bytes(os.Getpagesize())
}

// PageAlignment returns the alignment of virtual-memory pages. Every block
// returned by Reserve starts at an address with this alignment.
func PageAlignment() memory.Alignment {
	return memory.Alignment(os.Getpagesize())
}

// Ceil rounds size up to the next multiple of the page size.
func Ceil(size memory.Bytes) memory.Bytes {
	return size.CeilTo(PageSize())
}

// Floor rounds size down to the previous multiple of the page size.
func Floor(size memory.Bytes) memory.Bytes {
	return size.FloorTo(PageSize())
}

// Reserve claims size bytes of address space, rounded up to page
// granularity, with no physical backing. The returned block must not be
// read or written until the relevant pages are committed.
//
// The block returned here is the reservation's identity: pass this exact
// block (not a sub-view) to Release when done.
func Reserve(size memory.Bytes) (memory.MemoryBlock, error) {
	if size <= 0 {
		return memory.MemoryBlock{}, ErrBadSize
	}
	return osReserve(Ceil(size))
}

// Commit backs the pages spanned by block with physical memory. The block
// must lie inside a live reservation and be page-rounded.
func Commit(block memory.MemoryBlock) error {
	if block.IsEmpty() {
		return nil
	}
	return osCommit(block)
}

// Decommit returns the physical backing of the pages spanned by block to
// the OS while keeping the address range reserved. The contents are lost.
func Decommit(block memory.MemoryBlock) error {
	if block.IsEmpty() {
		return nil
	}
	return osDecommit(block)
}

// Release frees an entire reservation. block must be the exact block a
// previous Reserve returned.
func Release(block memory.MemoryBlock) error {
	if block.IsEmpty() {
		return nil
	}
	return osRelease(block)
}
