package memory

// Alignment is a power-of-two byte alignment.
type Alignment int64

// MaxAlignment is the strictest alignment any ordinary object requires on
// the platforms this library targets. Allocators that take no explicit
// alignment use this as their default.
const MaxAlignment Alignment = 16

// IsValid reports whether a is a power of two. Every Alignment consumed by
// the allocator stack must satisfy this; zero and negative values are
// rejected.
func (a Alignment) IsValid() bool {
	return a > 0 && a&(a-1) == 0
}

// Bytes returns the alignment as a byte count.
func (a Alignment) Bytes() Bytes {
	return Bytes(a)
}

// Ceil rounds size up to the next multiple of a.
func (a Alignment) Ceil(size Bytes) Bytes {
	return (size + Bytes(a) - 1) &^ (Bytes(a) - 1)
}

// Floor rounds size down to the previous multiple of a.
func (a Alignment) Floor(size Bytes) Bytes {
	return size &^ (Bytes(a) - 1)
}

// CeilAddress rounds the address up to the next a-aligned address.
func (a Alignment) CeilAddress(address uintptr) uintptr {
	return (address + uintptr(a) - 1) &^ (uintptr(a) - 1)
}

// FloorAddress rounds the address down to the previous a-aligned address.
func (a Alignment) FloorAddress(address uintptr) uintptr {
	return address &^ (uintptr(a) - 1)
}

// IsAlignedAddress reports whether the address is a multiple of a.
func (a Alignment) IsAlignedAddress(address uintptr) bool {
	return address&(uintptr(a)-1) == 0
}
