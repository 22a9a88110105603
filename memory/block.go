package memory

import "unsafe"

// MemoryBlock is a non-owning view over a span of memory.
//
// The zero value is the empty block, which doubles as the universal
// allocation-failure sentinel: every Allocate in this library returns
// either the full requested span or an empty block, never a partial one.
//
// A MemoryBlock never frees the memory it views. Ownership stays with
// whichever allocator or reservation produced the underlying storage.
type MemoryBlock struct {
	data []byte
}

// BlockOf wraps an existing byte slice in a MemoryBlock view.
func BlockOf(data []byte) MemoryBlock {
	return MemoryBlock{data: data}
}

// BlockAt reconstructs a view over size bytes starting at address.
//
// The caller must guarantee the span is live storage it is entitled to
// view; this is how allocators rebuild blocks from addresses stored in
// intrusive free lists.
func BlockAt(address uintptr, size Bytes) MemoryBlock {
	if address == 0 || size <= 0 {
		return MemoryBlock{}
	}
	return MemoryBlock{data: unsafe.Slice((*byte)(unsafe.Pointer(address)), int(size))}
}

// IsEmpty reports whether the block views no memory.
func (b MemoryBlock) IsEmpty() bool {
	return len(b.data) == 0
}

// Size returns the number of bytes the block views.
func (b MemoryBlock) Size() Bytes {
	return Bytes(len(b.data))
}

// Data exposes the underlying bytes. The slice aliases the block's
// storage; writes through it are writes to the allocation.
func (b MemoryBlock) Data() []byte {
	return b.data
}

// Address returns the address of the first byte, or 0 for the empty block.
func (b MemoryBlock) Address() uintptr {
	if len(b.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b.data[0]))
}

// End returns the address one past the last byte, or 0 for the empty block.
func (b MemoryBlock) End() uintptr {
	if len(b.data) == 0 {
		return 0
	}
	return b.Address() + uintptr(len(b.data))
}

// Slice returns the sub-view [from, to) of the block.
// Bounds outside the block are a caller bug and will panic, matching slice
// semantics everywhere else in Go.
func (b MemoryBlock) Slice(from, to Bytes) MemoryBlock {
	return MemoryBlock{data: b.data[from:to]}
}

// Contains reports whether other is a span fully inside b.
// The empty block is contained nowhere and contains nothing.
func (b MemoryBlock) Contains(other MemoryBlock) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return other.Address() >= b.Address() && other.End() <= b.End()
}

// ContainsAddress reports whether the address falls inside b.
func (b MemoryBlock) ContainsAddress(address uintptr) bool {
	if b.IsEmpty() {
		return false
	}
	return address >= b.Address() && address < b.End()
}

// IsAlignedTo reports whether the block starts at an a-aligned address.
func (b MemoryBlock) IsAlignedTo(a Alignment) bool {
	return !b.IsEmpty() && a.IsAlignedAddress(b.Address())
}

// Zero clears every byte in the block.
func (b MemoryBlock) Zero() {
	clear(b.data)
}
