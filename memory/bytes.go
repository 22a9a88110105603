package memory

// Bytes is a size or offset expressed in bytes.
//
// Arithmetic between Bytes values is exact: there is no implicit rounding
// anywhere in this package. Rounding is always explicit, via Alignment.Ceil,
// Alignment.Floor or the page helpers in the vmem package.
type Bytes int64

// Common byte quantities.
const (
	Byte   Bytes = 1
	KiByte       = 1024 * Byte
	MiByte       = 1024 * KiByte
	GiByte       = 1024 * MiByte
)

// SizeOfPointer is the size of an address on the current platform.
// Intrusive free lists store one of these inside every freed block, which
// puts a lower bound on usable block sizes.
const SizeOfPointer = Bytes(4 << (^uintptr(0) >> 63))

// IsMultipleOf reports whether b is an exact multiple of unit.
func (b Bytes) IsMultipleOf(unit Bytes) bool {
	return unit > 0 && b%unit == 0
}

// CeilTo rounds b up to the next multiple of unit. unit must be positive
// but is not required to be a power of two (commit granularities may be
// arbitrary multiples of the page size).
func (b Bytes) CeilTo(unit Bytes) Bytes {
	return ((b + unit - 1) / unit) * unit
}

// FloorTo rounds b down to the previous multiple of unit.
func (b Bytes) FloorTo(unit Bytes) Bytes {
	return (b / unit) * unit
}
