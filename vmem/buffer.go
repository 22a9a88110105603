package vmem

import "github.com/RDFacendola/Syntropy-sub001/memory"

// VirtualBuffer owns exactly one virtual-address reservation for its
// lifetime. It is the RAII anchor under the Tier-0 allocators: they slice
// and commit pages out of the buffer's span but never own the reservation
// themselves.
//
// A VirtualBuffer must not be copied; pass it by pointer. Release is
// idempotent and the only way the reservation is ever returned to the OS.
type VirtualBuffer struct {
	block memory.MemoryBlock
}

// NewVirtualBuffer reserves capacity bytes of address space, rounded up to
// page granularity. No pages are committed.
func NewVirtualBuffer(capacity memory.Bytes) (*VirtualBuffer, error) {
	block, err := Reserve(capacity)
	if err != nil {
		return nil, err
	}
	return &VirtualBuffer{block: block}, nil
}

// Block returns the full reserved span as a view.
func (b *VirtualBuffer) Block() memory.MemoryBlock {
	return b.block
}

// Size returns the reserved capacity in bytes.
func (b *VirtualBuffer) Size() memory.Bytes {
	return b.block.Size()
}

// Contains reports whether address falls inside the reservation.
func (b *VirtualBuffer) Contains(address uintptr) bool {
	return b.block.ContainsAddress(address)
}

// Release returns the reservation to the OS. After Release every block
// ever sliced from this buffer is invalid. Safe to call more than once.
func (b *VirtualBuffer) Release() error {
	if b.block.IsEmpty() {
		return nil
	}
	err := Release(b.block)
	b.block = memory.MemoryBlock{}
	return err
}
