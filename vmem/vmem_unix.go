//go:build linux || darwin

package vmem

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/RDFacendola/Syntropy-sub001/memory"
)

// osReserve maps an anonymous PROT_NONE range. PROT_NONE plus MAP_NORESERVE
// claims address space without physical backing or swap accounting; pages
// become usable only after osCommit flips them to read-write.
func osReserve(size memory.Bytes) (memory.MemoryBlock, error) {
	data, err := unix.Mmap(
		-1,
		0,
		int(size),
		unix.PROT_NONE,
		unix.MAP_PRIVATE|unix.MAP_ANON|unix.MAP_NORESERVE,
	)
	if err != nil {
		return memory.MemoryBlock{}, fmt.Errorf("%w: %v", ErrReserve, err)
	}
	return memory.BlockOf(data), nil
}

// osCommit enables access to the pages spanned by block. Physical frames
// are faulted in lazily by the kernel on first touch.
func osCommit(block memory.MemoryBlock) error {
	if err := unix.Mprotect(block.Data(), unix.PROT_READ|unix.PROT_WRITE); err != nil {
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}
	return nil
}

// osDecommit drops the physical backing and revokes access. MADV_DONTNEED
// tells the kernel the contents are disposable; the mprotect back to
// PROT_NONE restores the reserved-but-unusable state.
func osDecommit(block memory.MemoryBlock) error {
	if err := unix.Madvise(block.Data(), unix.MADV_DONTNEED); err != nil {
		return fmt.Errorf("%w: %v", ErrDecommit, err)
	}
	if err := unix.Mprotect(block.Data(), unix.PROT_NONE); err != nil {
		return fmt.Errorf("%w: %v", ErrDecommit, err)
	}
	return nil
}

// osRelease unmaps the reservation. block must be the exact slice returned
// by osReserve; unix.Munmap tracks mappings by their backing array.
func osRelease(block memory.MemoryBlock) error {
	if err := unix.Munmap(block.Data()); err != nil {
		return fmt.Errorf("%w: %v", ErrRelease, err)
	}
	return nil
}
