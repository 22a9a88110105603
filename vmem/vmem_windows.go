//go:build windows

package vmem

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/RDFacendola/Syntropy-sub001/memory"
)

// osReserve claims address space with MEM_RESERVE. VirtualAlloc aligns the
// base to the system allocation granularity (64 KiB) on its own.
func osReserve(size memory.Bytes) (memory.MemoryBlock, error) {
	address, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		return memory.MemoryBlock{}, fmt.Errorf("%w: %v", ErrReserve, err)
	}
	return memory.BlockAt(address, size), nil
}

func osCommit(block memory.MemoryBlock) error {
	_, err := windows.VirtualAlloc(block.Address(), uintptr(block.Size()), windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}
	return nil
}

func osDecommit(block memory.MemoryBlock) error {
	if err := windows.VirtualFree(block.Address(), uintptr(block.Size()), windows.MEM_DECOMMIT); err != nil {
		return fmt.Errorf("%w: %v", ErrDecommit, err)
	}
	return nil
}

// osRelease frees the whole reservation. MEM_RELEASE requires the base
// address of the original reservation and a zero size.
func osRelease(block memory.MemoryBlock) error {
	if err := windows.VirtualFree(block.Address(), 0, windows.MEM_RELEASE); err != nil {
		return fmt.Errorf("%w: %v", ErrRelease, err)
	}
	return nil
}
