package alloc

import (
	"unsafe"

	"github.com/RDFacendola/Syntropy-sub001/memory"
)

// Finalizable is implemented by types that need teardown logic when the
// scope that constructed them closes. New registers the Finalize method
// automatically; types without one are treated as trivially destructible
// and get no finalizer.
type Finalizable interface {
	Finalize()
}

// finalizerNode is one link of the scope's LIFO finalizer list. Nodes live
// on the Go heap so the closures they hold stay visible to the garbage
// collector; only the object storage comes from the wrapped allocator.
type finalizerNode struct {
	next *finalizerNode
	run  func()
}

// ScopeAllocator layers automatic, reverse-order finalization on top of
// any checkpoint-capable allocator. Construction captures a checkpoint;
// Close runs every registered finalizer in reverse-construction order -
// mirroring stack-unwind destruction - and then rewinds the wrapped
// allocator, reclaiming everything allocated through the scope in one
// step.
type ScopeAllocator[R RewindAllocator] struct {
	inner      R
	mark       Checkpoint
	finalizers *finalizerNode
}

// NewScope opens a scope over inner, capturing its current checkpoint.
func NewScope[R RewindAllocator](inner R) *ScopeAllocator[R] {
	return &ScopeAllocator[R]{inner: inner, mark: inner.Checkpoint()}
}

// Allocate passes through to the wrapped allocator. The block is reclaimed
// when the scope closes.
func (s *ScopeAllocator[R]) Allocate(size memory.Bytes, alignment memory.Alignment) memory.MemoryBlock {
	return s.inner.Allocate(size, alignment)
}

// Deallocate is a no-op: scope memory is reclaimed in bulk at Close.
func (s *ScopeAllocator[R]) Deallocate(block memory.MemoryBlock, alignment memory.Alignment) {}

// Defer registers fn to run when the scope closes. Finalizers run LIFO.
func (s *ScopeAllocator[R]) Defer(fn func()) {
	s.finalizers = &finalizerNode{next: s.finalizers, run: fn}
}

// Close runs every finalizer in reverse-registration order, then rewinds
// the wrapped allocator to the checkpoint captured at construction. The
// scope must not be used afterwards.
func (s *ScopeAllocator[R]) Close() {
	for node := s.finalizers; node != nil; node = node.next {
		node.run()
	}
	s.finalizers = nil
	s.inner.Rewind(s.mark)
}

// New constructs a zeroed T in storage allocated from the scope and
// returns a pointer to it, or nil when the wrapped allocator fails. If T
// implements Finalizable, its Finalize method is registered to run at
// Close.
//
// T must not hold pointers into the Go heap: scope storage is invisible to
// the garbage collector, so heap objects referenced only from a scope
// allocation may be collected while still in use.
func New[T any, R RewindAllocator](s *ScopeAllocator[R]) *T {
	var zero T
	size := max(memory.Bytes(unsafe.Sizeof(zero)), 1)
	alignment := memory.Alignment(unsafe.Alignof(zero))

	block := s.inner.Allocate(size, alignment)
	if block.IsEmpty() {
		return nil
	}
	block.Zero()

	object := (*T)(unsafe.Pointer(block.Address()))
	if finalizable, ok := any(object).(Finalizable); ok {
		s.Defer(finalizable.Finalize)
	}
	return object
}

// Compile-time capability check against a representative instantiation.
var _ Allocator = (*ScopeAllocator[*VirtualStackAllocator])(nil)
