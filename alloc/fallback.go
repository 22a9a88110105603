package alloc

import "github.com/RDFacendola/Syntropy-sub001/memory"

// FallbackAllocator is the Tier-Ω composite: try the primary, fall back to
// the secondary. The primary is constrained to expose Owns so that
// deallocations can be routed to whichever allocator owns the block - a
// compile-time guarantee, not a runtime check.
//
// The composite exposes only the capabilities both members can honor:
// Allocate/Deallocate are always present, while the combined Owns and
// DeallocateAll are free functions whose stricter constraints make them
// available exactly when both members support the operation.
type FallbackAllocator[A OwningAllocator, B Allocator] struct {
	primary   A
	secondary B
}

// NewFallback composes primary and secondary into a fallback allocator.
func NewFallback[A OwningAllocator, B Allocator](primary A, secondary B) *FallbackAllocator[A, B] {
	return &FallbackAllocator[A, B]{primary: primary, secondary: secondary}
}

// Allocate tries the primary first and falls back to the secondary on an
// empty result. Empty only when both fail.
func (a *FallbackAllocator[A, B]) Allocate(size memory.Bytes, alignment memory.Alignment) memory.MemoryBlock {
	if block := a.primary.Allocate(size, alignment); !block.IsEmpty() {
		return block
	}
	return a.secondary.Allocate(size, alignment)
}

// Deallocate routes the block to the primary when it owns it, otherwise to
// the secondary.
func (a *FallbackAllocator[A, B]) Deallocate(block memory.MemoryBlock, alignment memory.Alignment) {
	if a.primary.Owns(block) {
		a.primary.Deallocate(block, alignment)
		return
	}
	a.secondary.Deallocate(block, alignment)
}

// Primary returns the composed primary allocator.
func (a *FallbackAllocator[A, B]) Primary() A {
	return a.primary
}

// Secondary returns the composed secondary allocator.
func (a *FallbackAllocator[A, B]) Secondary() B {
	return a.secondary
}

// FallbackOwns is the composite ownership query, available only when both
// members expose Owns.
func FallbackOwns[A OwningAllocator, B interface {
	Allocator
	Owner
}](a *FallbackAllocator[A, B], block memory.MemoryBlock) bool {
	return a.primary.Owns(block) || a.secondary.Owns(block)
}

// FallbackDeallocateAll is the composite bulk release, available only when
// both members expose DeallocateAll.
func FallbackDeallocateAll[A interface {
	OwningAllocator
	BulkDeallocator
}, B interface {
	Allocator
	BulkDeallocator
}](a *FallbackAllocator[A, B]) {
	a.primary.DeallocateAll()
	a.secondary.DeallocateAll()
}

// Compile-time capability check against a representative instantiation.
var _ Allocator = (*FallbackAllocator[*VirtualAllocator, *VirtualAllocator])(nil)
