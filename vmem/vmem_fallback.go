//go:build !linux && !darwin && !windows

package vmem

import "github.com/RDFacendola/Syntropy-sub001/memory"

// Platforms without usable virtual-memory syscalls get plain heap slabs.
// Reservations are committed up front, so commit and decommit are no-ops
// and the pointer-stability guarantees still hold. Release drops the view;
// the garbage collector reclaims the slab once nothing references it.

func osReserve(size memory.Bytes) (memory.MemoryBlock, error) {
	return memory.BlockOf(make([]byte, size)), nil
}

func osCommit(block memory.MemoryBlock) error {
	return nil
}

func osDecommit(block memory.MemoryBlock) error {
	return nil
}

func osRelease(block memory.MemoryBlock) error {
	return nil
}
